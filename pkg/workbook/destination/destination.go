package destination

import (
	"context"
	"fmt"
	"io"
)

// Destination receives a serialized workbook under its file name.
type Destination interface {
	fmt.Stringer
	Deliver(ctx context.Context, fileName, contentType string, body io.Reader) error
}
