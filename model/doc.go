/*
Package model defines the records held by the struct registry.

Inner is the leaf record. Outer is a composite that embeds two independently owned
Inner values and a string-to-string extension map:

	outer := model.Outer{
	    ID:         "222",
	    Inner:      model.Inner{ID: "111", Value: "v", MyValue: "mv"},
	    MyInner:    model.Inner{ID: "111", Value: "v", MyValue: "mv"},
	    Extensions: map[string]string{"k": "v"},
	}

Records are plain values. Outer carries a map, so Clone must be used whenever an
Outer crosses an ownership boundary; every datastore clones on write and on read.
*/
package model
