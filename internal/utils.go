package internal

import (
	"fmt"
	"reflect"
)

// ValidateKey rejects keys that cannot live in the lookup map: a nil key,
// or a type like a slice or map that would panic on map insert.
func ValidateKey(key interface{}) error {
	if key == nil {
		return fmt.Errorf("key cannot be nil")
	}
	if !reflect.TypeOf(key).Comparable() {
		return fmt.Errorf("invalid key type: %T is not comparable", key)
	}

	return nil
}
