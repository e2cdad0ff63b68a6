package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"msys2-buildqueue/internal/adapters"
	"msys2-buildqueue/internal/ports"
)

// Service wires the application operations to their adapters. Metadata
// can be preset for tests; otherwise it is chosen per request from the
// snapshot path or URL.
type Service struct {
	Metadata ports.MetadataPort
}

func NewService() Service {
	return Service{}
}

func (s Service) metadataPort(snapshotPath string, snapshotURL string, timeoutSec int, retries int, retryDelayMs int) (ports.MetadataPort, error) {
	if s.Metadata != nil {
		return s.Metadata, nil
	}
	path := strings.TrimSpace(snapshotPath)
	url := strings.TrimSpace(snapshotURL)
	switch {
	case path != "" && url != "":
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot path and snapshot URL are mutually exclusive")
	case path != "":
		return adapters.NewMetadataFileAdapter(path), nil
	case url != "":
		return adapters.NewMetadataHTTPAdapter(url, timeoutSec, retries, retryDelayMs), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot path or snapshot URL is required")
	}
}
