package model

// Record - Represents one record stored in a hash table
//   - Key is the name the record is found by, only the first conf.MaxName bytes are significant
//   - Age is the application payload, the table never looks at it
type Record struct {
	Key string
	Age int
}
