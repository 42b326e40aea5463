package franchise

import "context"

// Repository describes franchise record persistence needs from use cases.
type Repository interface {
	ListRecords(ctx context.Context) ([]Record, error)
	ListRecordsByName(ctx context.Context, name string) ([]Record, error)
	UpsertRecord(ctx context.Context, record Record) (Record, error)
}
