package response

import (
	"rental-market/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// copyFrom fills a new T from the same-named fields of src.
func copyFrom[T any](src any) (*T, error) {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		return nil, errs.Wrap(err, "map response")
	}
	return &dst, nil
}

func copyAll[T any, S any](src []S) ([]*T, error) {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		d, err := copyFrom[T](s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
