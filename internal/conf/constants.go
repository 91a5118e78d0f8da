package conf

// MaxName - Max number of key bytes taking part in hashing and key comparison
const MaxName int = 256

// DefaultTableSize - Number of buckets used by the demonstration table
const DefaultTableSize int64 = 10
