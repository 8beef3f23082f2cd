package animals

// Record is the generic shape of an animal at the serialization boundary
//
//	{
//	  "type": "dog",
//	  "weight": 17,
//	  "color": "white"
//	}
//
// The type is an opaque tag until the record is resolved with FromRecord.
type Record struct {
	Type   string `json:"type" yaml:"type"`
	Weight int    `json:"weight" yaml:"weight"`
	Color  string `json:"color" yaml:"color"`
}

// FromRecord resolves a record into its kind of animal
func FromRecord(r Record) (Animal, bool) {
	return New(r.Type, r.Color, r.Weight)
}

// FromRecords resolves all records that have a known type, keeping their relative order.
// Records of an unknown type are dropped.
func FromRecords(records []Record) []Animal {
	arr := make([]Animal, 0, len(records))

	for _, r := range records {
		if a, ok := FromRecord(r); ok {
			arr = append(arr, a)
		}
	}

	return arr
}

func ToRecord(a Animal) Record {
	return Record{
		Type:   a.Kind().String(),
		Weight: a.Weight(),
		Color:  a.Color(),
	}
}

func ToRecords(animals []Animal) []Record {
	records := make([]Record, 0, len(animals))

	for _, a := range animals {
		records = append(records, ToRecord(a))
	}

	return records
}
