package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/shopsim/internal/dependencies/mocks"
	"github.com/mcoot/shopsim/internal/model"
	"github.com/mcoot/shopsim/internal/storage/memory"
	"github.com/mcoot/shopsim/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	generator := NewGenerator(s.random, model.NewIDAllocator())
	s.service = New(s.storage, generator, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestPopulateSavesProducts() {
	products, err := s.service.Populate(s.ctx, 5)
	s.Require().NoError(err)
	s.Len(products, 5)

	stored, err := s.storage.ListProducts(s.ctx)
	s.Require().NoError(err)
	s.Len(stored, 5)
}

func (s *ServiceSuite) TestLoadPopulatesEmptyStorage() {
	products, err := s.service.Load(s.ctx, DefaultSize)
	s.Require().NoError(err)
	s.Len(products, DefaultSize)
}

func (s *ServiceSuite) TestLoadReusesStoredProducts() {
	existing, err := model.NewProduct(7, "LG", "Toaster", 4, 2000)
	s.Require().NoError(err)
	s.Require().NoError(s.storage.SaveProduct(s.ctx, existing))

	products, err := s.service.Load(s.ctx, DefaultSize)
	s.Require().NoError(err)
	s.Require().Len(products, 1)
	s.Same(existing, products[0])

	// New products never collide with loaded ones
	added, err := s.service.Populate(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(model.ProductID(8), added[0].ID())
}

func (s *ServiceSuite) TestRegenerateReplacesCatalog() {
	first, err := s.service.Populate(s.ctx, 3)
	s.Require().NoError(err)

	second, err := s.service.Regenerate(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(second, 2)

	_, err = s.service.Get(s.ctx, first[0].ID())
	s.ErrorIs(err, model.ErrProductNotFound)

	all, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *ServiceSuite) TestGet() {
	products, err := s.service.Populate(s.ctx, 2)
	s.Require().NoError(err)

	p, err := s.service.Get(s.ctx, products[1].ID())
	s.Require().NoError(err)
	s.Same(products[1], p)
}

func (s *ServiceSuite) TestRandomPicksFromCatalog() {
	products, err := s.service.Populate(s.ctx, 3)
	s.Require().NoError(err)

	s.random.QueueIntn(2)
	p, err := s.service.Random(s.ctx)
	s.Require().NoError(err)
	s.Same(products[2], p)
}

func (s *ServiceSuite) TestRandomOnEmptyCatalog() {
	_, err := s.service.Random(s.ctx)
	s.ErrorIs(err, model.ErrCatalogEmpty)
}

func (s *ServiceSuite) TestNegativeSizeIsRejected() {
	_, err := s.service.Populate(s.ctx, -1)
	s.ErrorIs(err, model.ErrInvalidArgument)

	_, err = s.service.Load(s.ctx, -3)
	s.ErrorIs(err, model.ErrInvalidArgument)

	products, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(products)
}
