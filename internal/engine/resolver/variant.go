package resolver

import (
	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// SelectVariant returns the declared build variant called name, unchanged.
func SelectVariant(variants []domain.BuildVariant, name string) (domain.BuildVariant, error) {
	for _, v := range variants {
		if v.Name == name {
			return v, nil
		}
	}

	declared := make([]string, 0, len(variants))
	for _, v := range variants {
		declared = append(declared, v.Name)
	}
	err := zerr.With(zerr.Wrap(domain.ErrUnknownVariant, "build type is not declared"), "variant", name)
	return domain.BuildVariant{}, zerr.With(err, "declared", declared)
}
