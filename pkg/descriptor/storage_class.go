package descriptor

import "errors"

// StorageClass is an enumerated tier objects can be transitioned to.
type StorageClass uint8

const (
	StorageClassUnknown StorageClass = iota
	StorageClassStandard
	StorageClassInfrequentAccess
	StorageClassIntelligentTiering
	StorageClassGlacier
	StorageClassDeepArchive
)

// ErrUnknownStorageClass is returned by ParseStorageClass for names outside
// the enumerated set.
var ErrUnknownStorageClass = errors.New("unknown storage class")

var (
	storageClassNames = map[StorageClass]string{
		StorageClassUnknown:            "UNKNOWN",
		StorageClassStandard:           "STANDARD",
		StorageClassInfrequentAccess:   "STANDARD_IA",
		StorageClassIntelligentTiering: "INTELLIGENT_TIERING",
		StorageClassGlacier:            "GLACIER",
		StorageClassDeepArchive:        "DEEP_ARCHIVE",
	}
	storageClassValues = map[string]StorageClass{
		"STANDARD":            StorageClassStandard,
		"STANDARD_IA":         StorageClassInfrequentAccess,
		"INTELLIGENT_TIERING": StorageClassIntelligentTiering,
		"GLACIER":             StorageClassGlacier,
		"DEEP_ARCHIVE":        StorageClassDeepArchive,
	}
)

func (sc StorageClass) String() string {
	if name, ok := storageClassNames[sc]; ok {
		return name
	}
	return "UNKNOWN"
}

// TransitionAllowed reports whether objects may be transitioned into this
// class. STANDARD is a creation-time class only.
func (sc StorageClass) TransitionAllowed() bool {
	switch sc {
	case StorageClassInfrequentAccess, StorageClassIntelligentTiering,
		StorageClassGlacier, StorageClassDeepArchive:
		return true
	default:
		return false
	}
}

// ParseStorageClass resolves a storage class name.
func ParseStorageClass(name string) (StorageClass, error) {
	if sc, ok := storageClassValues[name]; ok {
		return sc, nil
	}
	return StorageClassUnknown, ErrUnknownStorageClass
}
