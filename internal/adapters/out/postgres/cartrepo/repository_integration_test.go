package cartrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/cartrepo"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *cartrepo.GormCartRepository
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(cartrepo.AutoMigrate(db))
	suite.repo = cartrepo.NewGormCartRepository(db)
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE cart_items RESTART IDENTITY").Error)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CartRepositoryIntegrationTestSuite) TestFindMatching_UsesProductIdentity() {
	ctx := context.Background()
	hot := suite.dishRef(1, "hot")
	mild := suite.dishRef(1, "mild")
	box := suite.setmealRef(2)

	suite.Require().NoError(suite.repo.AddBatch(ctx, []*cart.Item{
		suite.newItem(7, hot, 1),
		suite.newItem(7, box, 2),
	}))

	found, err := suite.repo.FindMatching(ctx, 7, hot)
	suite.Require().NoError(err)
	suite.Equal("hot", found.Product().Flavor())
	suite.Equal(1, found.Quantity())

	found, err = suite.repo.FindMatching(ctx, 7, box)
	suite.Require().NoError(err)
	suite.Equal(2, found.Quantity())
	suite.Nil(found.Product().DishID())

	_, err = suite.repo.FindMatching(ctx, 7, mild)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repo.FindMatching(ctx, 8, hot)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CartRepositoryIntegrationTestSuite) TestUpdateQuantityAndDelete() {
	ctx := context.Background()
	ref := suite.setmealRef(2)
	suite.Require().NoError(suite.repo.Add(ctx, suite.newItem(7, ref, 1)))

	item, err := suite.repo.FindMatching(ctx, 7, ref)
	suite.Require().NoError(err)
	suite.Require().NoError(item.Increase(4))
	suite.Require().NoError(suite.repo.UpdateQuantity(ctx, item))

	reloaded, err := suite.repo.FindMatching(ctx, 7, ref)
	suite.Require().NoError(err)
	suite.Equal(5, reloaded.Quantity())
	suite.Equal("30.00", reloaded.Snapshot().Price.String())

	suite.Require().NoError(suite.repo.Delete(ctx, reloaded.ID()))
	items, err := suite.repo.ListByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *CartRepositoryIntegrationTestSuite) TestDeleteByCustomer_KeepsOtherCarts() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.AddBatch(ctx, []*cart.Item{
		suite.newItem(7, suite.dishRef(1, ""), 1),
		suite.newItem(7, suite.dishRef(3, ""), 1),
		suite.newItem(8, suite.dishRef(1, ""), 1),
	}))

	suite.Require().NoError(suite.repo.DeleteByCustomer(ctx, 7))

	mine, err := suite.repo.ListByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Empty(mine)

	theirs, err := suite.repo.ListByCustomer(ctx, 8)
	suite.Require().NoError(err)
	suite.Len(theirs, 1)
}

func (suite *CartRepositoryIntegrationTestSuite) TestAdd_SameProductMergesIntoOneRow() {
	ctx := context.Background()
	hot := suite.dishRef(1, "hot")
	box := suite.setmealRef(2)

	suite.Require().NoError(suite.repo.Add(ctx, suite.newItem(7, hot, 1)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newItem(7, hot, 2)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newItem(7, box, 1)))
	suite.Require().NoError(suite.repo.AddBatch(ctx, []*cart.Item{suite.newItem(7, box, 4)}))

	items, err := suite.repo.ListByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal(3, items[0].Quantity())
	suite.Equal(5, items[1].Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestAdd_ConcurrentSameProduct_KeepsOneRow() {
	ctx := context.Background()
	box := suite.setmealRef(2)

	const adds = 8
	errCh := make(chan error, adds)
	var wg sync.WaitGroup
	for range adds {
		item := suite.newItem(7, box, 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- suite.repo.Add(ctx, item)
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		suite.Require().NoError(err)
	}

	items, err := suite.repo.ListByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal(adds, items[0].Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestDeleteByIDs_LeavesUnlistedItems() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.AddBatch(ctx, []*cart.Item{
		suite.newItem(7, suite.dishRef(1, ""), 1),
		suite.newItem(7, suite.dishRef(3, ""), 1),
		suite.newItem(8, suite.dishRef(1, ""), 1),
	}))

	mine, err := suite.repo.ListByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Len(mine, 2)

	// id 3 belongs to customer 8 and must not be touched.
	suite.Require().NoError(suite.repo.DeleteByIDs(ctx, 7, []int64{mine[0].ID(), 3}))
	suite.Require().NoError(suite.repo.DeleteByIDs(ctx, 7, nil))

	mine, err = suite.repo.ListByCustomer(ctx, 7)
	suite.Require().NoError(err)
	suite.Require().Len(mine, 1)
	suite.Equal(int64(3), *mine[0].Product().DishID())

	theirs, err := suite.repo.ListByCustomer(ctx, 8)
	suite.Require().NoError(err)
	suite.Len(theirs, 1)
}

func (suite *CartRepositoryIntegrationTestSuite) TestLockByCustomer_InsideTransaction() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newItem(7, suite.dishRef(1, ""), 3)))

	err := suite.db.Transaction(func(tx *gorm.DB) error {
		items, lockErr := cartrepo.NewGormCartRepository(tx).LockByCustomer(ctx, 7)
		suite.Require().NoError(lockErr)
		suite.Len(items, 1)
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *CartRepositoryIntegrationTestSuite) dishRef(id int64, flavor string) kernel.ProductRef {
	ref, err := kernel.NewDishRef(id, flavor)
	suite.Require().NoError(err)
	return ref
}

func (suite *CartRepositoryIntegrationTestSuite) setmealRef(id int64) kernel.ProductRef {
	ref, err := kernel.NewSetmealRef(id)
	suite.Require().NoError(err)
	return ref
}

func (suite *CartRepositoryIntegrationTestSuite) newItem(customerID int64, ref kernel.ProductRef, qty int) *cart.Item {
	item, err := cart.NewItem(customerID, ref,
		cart.ProductSnapshot{Name: "Item", Image: "item.png", Price: kernel.MustMoney("30.00")},
		qty, time.Now().UTC())
	suite.Require().NoError(err)
	return item
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
