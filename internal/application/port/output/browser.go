package output

import (
	"context"

	"page-explorer/internal/domain/entity"

	"github.com/ysmood/gson"
)

// PageReader — только чтение текущего состояния страницы.
// Discovery и Capturer получают сессию исключительно через этот интерфейс.
type PageReader interface {
	Evaluate(ctx context.Context, js string) (gson.JSON, error)
	HTML(ctx context.Context) (string, error)
	Screenshot(ctx context.Context) (*entity.Screenshot, error)
	CurrentURL() string
}

// PageDriver — операции, меняющие состояние страницы. Вызывает только драйвер.
type PageDriver interface {
	Navigate(ctx context.Context, url string) error
	Click(ctx context.Context, candidate entity.SelectorCandidate) error
}

type BrowserSession interface {
	PageReader
	PageDriver
	Close()
}
