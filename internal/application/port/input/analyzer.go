package input

import "context"

type Analyzer interface {
	Analyze(ctx context.Context, dataPath, query string) (string, error)
}
