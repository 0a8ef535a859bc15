package sr

import srerrors "github.com/raster-image/dicomsr/errors"

// Validate walks a built content tree depth-first and checks it against
// the document family's policy. The first violation is returned as a
// *errors.BuildError; a nil return means the tree is structurally valid
// for the family.
//
// Family-specific rules on top of the generic value-type check:
//   - Comprehensive3DSR: every SCOORD3D item must carry a resolved frame
//     of reference UID (the builder substitutes its default before
//     validation runs).
//   - KeyObjectSelectionDocument: at least one key-object reference item
//     (IMAGE, COMPOSITE or WAVEFORM) must be present.
func Validate(docType DocumentType, root ContainerValue) error {
	var violation error
	root.walk(func(item *ContentItem) bool {
		vt := item.ValueType()
		if !docType.Allows(vt) {
			violation = srerrors.NewBuildError(docType.String(), string(vt), srerrors.ErrInvalidValueType)
			return false
		}
		if docType == Comprehensive3DSR {
			if sc, ok := item.AsSCoord3D(); ok && sc.FrameOfReferenceUID == "" {
				violation = srerrors.NewBuildError(docType.String(), string(vt), srerrors.ErrMissingFrameOfReference)
				return false
			}
		}
		return true
	})
	if violation != nil {
		return violation
	}

	if docType == KeyObjectSelectionDocument && countKeyObjects(root) == 0 {
		return srerrors.NewBuildError(docType.String(), "", srerrors.ErrNoKeyObjects)
	}
	return nil
}

// countKeyObjects counts the key-object reference items in the tree.
func countKeyObjects(root ContainerValue) int {
	count := 0
	root.walk(func(item *ContentItem) bool {
		switch item.ValueType() {
		case ValueTypeImage, ValueTypeComposite, ValueTypeWaveform:
			count++
		}
		return true
	})
	return count
}
