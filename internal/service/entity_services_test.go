package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clonestore/internal/model"
)

func TestPlasmidService_CreateDefaultsEntryTime(t *testing.T) {
	ctx := context.Background()
	repoMock := new(mockPlasmidRepo)
	svc := NewPlasmidService(repoMock)

	repoMock.On("Insert", mock.Anything, mock.MatchedBy(func(p *model.Plasmid) bool {
		return p.TimeOfEntry > 0
	})).Return("pAL1", nil).Once()

	p := &model.Plasmid{CreatedBy: "Ada Lovelace", Initials: "AL", TimeOfCreation: time.Now().Unix()}
	id, err := svc.Create(ctx, p)
	assert.NoError(t, err)
	assert.Equal(t, "pAL1", id)
	repoMock.AssertExpectations(t)
}

func TestPlasmidService_CreateKeepsExplicitEntryTime(t *testing.T) {
	ctx := context.Background()
	repoMock := new(mockPlasmidRepo)
	svc := NewPlasmidService(repoMock)

	entry := time.Now().Add(-time.Hour).Unix()
	repoMock.On("Insert", mock.Anything, mock.MatchedBy(func(p *model.Plasmid) bool {
		return p.TimeOfEntry == entry
	})).Return("pAL1", nil).Once()

	p := &model.Plasmid{CreatedBy: "Ada Lovelace", Initials: "AL", TimeOfEntry: entry, TimeOfCreation: entry}
	_, err := svc.Create(ctx, p)
	assert.NoError(t, err)
	repoMock.AssertExpectations(t)
}

func TestPlasmidService_ArchiveAbsent(t *testing.T) {
	ctx := context.Background()
	repoMock := new(mockPlasmidRepo)
	svc := NewPlasmidService(repoMock)

	repoMock.On("Get", mock.Anything, "pXX99").Return((*model.Plasmid)(nil), nil).Once()

	err := svc.Archive(ctx, "pXX99")
	assert.ErrorIs(t, err, model.ErrNotFound)
	repoMock.AssertNotCalled(t, "Archive", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlasmidService_ArchiveExisting(t *testing.T) {
	ctx := context.Background()
	repoMock := new(mockPlasmidRepo)
	svc := NewPlasmidService(repoMock)

	repoMock.On("Get", mock.Anything, "pAL1").Return(&model.Plasmid{ID: "pAL1"}, nil).Once()
	repoMock.On("Archive", mock.Anything, "pAL1", true).Return(nil).Once()

	assert.NoError(t, svc.Archive(ctx, "pAL1"))
	repoMock.AssertExpectations(t)
}

func TestOrganismService_Relocate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty target rejected", func(t *testing.T) {
		repoMock := new(mockOrganismRepo)
		svc := NewOrganismService(repoMock)

		var verr *model.ValidationError
		assert.ErrorAs(t, svc.Relocate(ctx, "mAL1", ""), &verr)
		repoMock.AssertNotCalled(t, "UpdateStorageLocation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("absent organism rejected", func(t *testing.T) {
		repoMock := new(mockOrganismRepo)
		svc := NewOrganismService(repoMock)

		repoMock.On("Get", mock.Anything, "mXX99").Return((*model.Microorganism)(nil), nil).Once()
		assert.ErrorIs(t, svc.Relocate(ctx, "mXX99", "rack B"), model.ErrNotFound)
	})

	t.Run("existing organism relocated", func(t *testing.T) {
		repoMock := new(mockOrganismRepo)
		svc := NewOrganismService(repoMock)

		repoMock.On("Get", mock.Anything, "mAL1").Return(&model.Microorganism{ID: "mAL1"}, nil).Once()
		repoMock.On("UpdateStorageLocation", mock.Anything, "mAL1", "rack B").Return(nil).Once()

		assert.NoError(t, svc.Relocate(ctx, "mAL1", "rack B"))
		repoMock.AssertExpectations(t)
	})
}

func TestGenericService_ArchiveAndRelocate(t *testing.T) {
	ctx := context.Background()

	t.Run("archive absent", func(t *testing.T) {
		repoMock := new(mockGenericRepo)
		svc := NewGenericService(repoMock)

		repoMock.On("Get", mock.Anything, "gXX99").Return((*model.GenericObject)(nil), nil).Once()
		assert.ErrorIs(t, svc.Archive(ctx, "gXX99"), model.ErrNotFound)
	})

	t.Run("archive existing", func(t *testing.T) {
		repoMock := new(mockGenericRepo)
		svc := NewGenericService(repoMock)

		repoMock.On("Get", mock.Anything, "gAL1").Return(&model.GenericObject{ID: "gAL1"}, nil).Once()
		repoMock.On("Archive", mock.Anything, "gAL1", true).Return(nil).Once()
		assert.NoError(t, svc.Archive(ctx, "gAL1"))
		repoMock.AssertExpectations(t)
	})

	t.Run("relocate existing", func(t *testing.T) {
		repoMock := new(mockGenericRepo)
		svc := NewGenericService(repoMock)

		repoMock.On("Get", mock.Anything, "gAL1").Return(&model.GenericObject{ID: "gAL1"}, nil).Once()
		repoMock.On("UpdateStorageLocation", mock.Anything, "gAL1", "box 9").Return(nil).Once()
		assert.NoError(t, svc.Relocate(ctx, "gAL1", "box 9"))
		repoMock.AssertExpectations(t)
	})
}
