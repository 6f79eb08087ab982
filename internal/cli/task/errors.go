package task

import (
	"fmt"

	"github.com/thenoetrevino/dragboard/internal/models"
)

var errColumnNotOnBoard = fmt.Errorf("%w on your board", models.ErrColumnNotFound)
