package tickets

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"itickets/internal/shared/database/dbtest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentReserveNeverOversells(t *testing.T) {
	db := dbtest.OpenPostgres(t)
	require.NoError(t, db.AutoMigrate(&TicketType{}))

	ctx := context.Background()
	eventID := int64(900001)
	require.NoError(t, db.Where("event_id = ?", eventID).Delete(&TicketType{}).Error)
	t.Cleanup(func() { db.Where("event_id = ?", eventID).Delete(&TicketType{}) })

	repo := NewRepository(db)
	id, err := repo.GetOrCreate(ctx, eventID, CategoryVIP, decimal.NewFromInt(5000), 10)
	require.NoError(t, err)

	var sold, rejected atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < 25; i++ {
		g.Go(func() error {
			err := repo.Reserve(gctx, id, 1)
			switch {
			case err == nil:
				sold.Add(1)
			case errors.Is(err, ErrInsufficientInventory):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(10), sold.Load())
	assert.Equal(t, int64(15), rejected.Load())

	var stored TicketType
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, 10, stored.SoldQuantity)
}

func TestConcurrentGetOrCreateYieldsOneRow(t *testing.T) {
	db := dbtest.OpenPostgres(t)
	require.NoError(t, db.AutoMigrate(&TicketType{}))

	ctx := context.Background()
	eventID := int64(900002)
	require.NoError(t, db.Where("event_id = ?", eventID).Delete(&TicketType{}).Error)
	t.Cleanup(func() { db.Where("event_id = ?", eventID).Delete(&TicketType{}) })

	repo := NewRepository(db)
	ids := make([]int64, 12)
	var g errgroup.Group
	for i := range ids {
		g.Go(func() error {
			id, err := repo.GetOrCreate(ctx, eventID, CategoryStandard, decimal.NewFromInt(1000), 1000)
			ids[i] = id
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}

	var count int64
	require.NoError(t, db.Model(&TicketType{}).Where("event_id = ?", eventID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
