package repository

// Entity is the minimal contract for repository entities. Models declare
// their table name and expose their primary key value for cache keying.
type Entity interface {
	// TableName returns the database table name for this entity.
	// Matches GORM's TableName convention, so the same method serves both.
	TableName() string

	// GetPrimaryKeyValue returns the current value of the primary key
	GetPrimaryKeyValue() interface{}
}
