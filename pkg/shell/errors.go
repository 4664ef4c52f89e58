package shell

import (
	"errors"

	"carrental/storage"
)

func isSelectionError(err error) bool {
	return errors.Is(err, storage.ErrCarNotFound) || errors.Is(err, storage.ErrCarNotAvailable)
}
