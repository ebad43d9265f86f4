// Package storage provides the persistent key-value slot taskflow state
// is written to.
//
// The file-backed implementation keeps one JSON file per key under a
// state directory. All access is serialized through file locking so
// concurrent taskflow invocations don't tear each other's writes.
package storage

// Storage is a durable key-value slot. Read reports ok=false when the key
// has never been written; absence is not an error.
type Storage interface {
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
}
