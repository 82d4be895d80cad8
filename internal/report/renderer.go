package report

import "CoinDigest/internal/model"

// Renderer turns extracted digest records plus a historical price
// series into a self-contained HTML document. Both implementations are
// pure functions of their inputs apart from the clock.
type Renderer interface {
	Render(records []model.DigestRecord, series []model.PricePoint) (string, error)
	Name() string
}
