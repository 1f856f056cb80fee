package Mappers

// PatchSemantics names the update contract of an entity. Customers are
// patched field-by-field (nil means keep), vehicles are replaced wholesale
// (zero values overwrite). The asymmetry is part of the API contract.
type PatchSemantics int

const (
	PatchPartial PatchSemantics = iota
	PatchFullReplace
)

func (p PatchSemantics) String() string {
	switch p {
	case PatchPartial:
		return "partial"
	case PatchFullReplace:
		return "full-replace"
	default:
		return "unknown"
	}
}

const (
	UtentePatchSemantics  = PatchPartial
	VeicoloPatchSemantics = PatchFullReplace
)
