package domain

import "errors"

type ItemKind string

// remember to add new kinds to the validItemKinds map
const (
	// ItemKindUnit is sold in discrete counts, e.g. pens.
	ItemKindUnit ItemKind = "unit"
	// ItemKindBulk is sold by continuous measurement, e.g. kilograms of gravel.
	ItemKindBulk ItemKind = "bulk"
)

var validItemKinds = map[ItemKind]struct{}{
	ItemKindUnit: {},
	ItemKindBulk: {},
}

func ToItemKind(s string) (ItemKind, error) {
	kind := ItemKind(s)
	if _, ok := validItemKinds[kind]; ok {
		return kind, nil
	}

	return "", errors.New("invalid item kind")
}

func ItemKinds() []ItemKind {
	result := make([]ItemKind, 0, len(validItemKinds))
	for kind := range validItemKinds {
		result = append(result, kind)
	}
	return result
}
