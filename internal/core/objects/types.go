package objects

import "fmt"

// ObjectType represents the type of a git object
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
	TypeTag    ObjectType = "tag"
)

// IsValid returns true if the object type is valid
func (t ObjectType) IsValid() bool {
	switch t {
	case TypeBlob, TypeTree, TypeCommit, TypeTag:
		return true
	default:
		return false
	}
}

// ParseObjectType converts a name such as "blob" into an ObjectType
func ParseObjectType(name string) (ObjectType, error) {
	t := ObjectType(name)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid object type %q", name)
	}
	return t, nil
}
