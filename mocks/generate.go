package mocks

//go:generate mockgen -destination=./mock_executor.go -package=mocks github.com/rxtech-lab/argo-grid/internal/strategy Executor
//go:generate mockgen -destination=./mock_treasurer.go -package=mocks github.com/rxtech-lab/argo-grid/internal/treasurer Treasurer
//go:generate mockgen -destination=./mock_price_source.go -package=mocks github.com/rxtech-lab/argo-grid/internal/market PriceSource
