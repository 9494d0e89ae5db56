// Package hashids encodes sequences of non-negative integers into short,
// salt-keyed strings and decodes them back.
//
// A Codec is derived once from a salt, an alphabet and a minimum length, and
// is then read-only: it can be shared by any number of goroutines.
//
//	codec, err := hashids.New(hashids.DefaultOptions("this is my salt"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	hash, _ := codec.Encode(12345) // "NkK9"
//	ids, _ := codec.Decode(hash)   // [12345]
//
// The output is obfuscation, not encryption. Anyone holding a handful of
// encodings and enough patience can recover the configuration.
package hashids
