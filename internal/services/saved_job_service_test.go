package services

import (
	"context"
	"testing"

	"ajira_backend/internal/models"
	"ajira_backend/internal/repositories"
	"ajira_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveJob(t *testing.T) {
	saved := new(mockSavedJobRepo)
	jobs := new(mockJobRepo)
	svc := NewSavedJobService(saved, jobs)
	ctx := context.Background()

	jobs.On("FindByID", mock.Anything, "job-1").Return(activeJob(), nil)
	jobs.On("FindByID", mock.Anything, "job-9").Return(nil, repositories.ErrJobNotFound)
	saved.On("Exists", mock.Anything, "seeker-1", "job-1").Return(false, nil).Once()
	saved.On("Exists", mock.Anything, "seeker-1", "job-1").Return(true, nil)
	saved.On("Create", mock.Anything, mock.AnythingOfType("*models.SavedJob")).Return(nil).Once()

	resp, err := svc.Save(ctx, nil, seekerViewer, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "job-1", resp.ID)

	_, err = svc.Save(ctx, nil, seekerViewer, "job-1")
	assert.ErrorIs(t, err, apperrors.ErrAlreadySaved)

	_, err = svc.Save(ctx, nil, seekerViewer, "job-9")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)

	_, err = svc.Save(ctx, nil, clientViewer, "job-1")
	assert.ErrorIs(t, err, apperrors.ErrOnlyJobSeekers)
}

func TestSaveJob_ConstraintRace(t *testing.T) {
	saved := new(mockSavedJobRepo)
	jobs := new(mockJobRepo)
	svc := NewSavedJobService(saved, jobs)

	jobs.On("FindByID", mock.Anything, "job-1").Return(activeJob(), nil)
	saved.On("Exists", mock.Anything, "seeker-1", "job-1").Return(false, nil)
	saved.On("Create", mock.Anything, mock.Anything).Return(repositories.ErrSavedJobAlreadyExists)

	_, err := svc.Save(context.Background(), nil, seekerViewer, "job-1")
	assert.ErrorIs(t, err, apperrors.ErrAlreadySaved)
}

func TestSaveJob_HiddenUnlessActive(t *testing.T) {
	for _, status := range []models.JobStatus{models.JobStatusDraft, models.JobStatusClosed} {
		t.Run(string(status), func(t *testing.T) {
			saved := new(mockSavedJobRepo)
			jobs := new(mockJobRepo)
			svc := NewSavedJobService(saved, jobs)

			job := activeJob()
			job.Status = status
			jobs.On("FindByID", mock.Anything, "job-1").Return(job, nil)

			resp, err := svc.Save(context.Background(), nil, seekerViewer, "job-1")
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
			saved.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUnsaveJob(t *testing.T) {
	saved := new(mockSavedJobRepo)
	svc := NewSavedJobService(saved, new(mockJobRepo))

	saved.On("Delete", mock.Anything, "seeker-1", "job-1").Return(nil)
	saved.On("Delete", mock.Anything, "seeker-1", "job-2").Return(repositories.ErrSavedJobNotFound)

	assert.NoError(t, svc.Unsave(context.Background(), nil, seekerViewer, "job-1"))
	assert.ErrorIs(t, svc.Unsave(context.Background(), nil, seekerViewer, "job-2"), apperrors.ErrSavedJobNotFound)
}

func TestListSavedJobs(t *testing.T) {
	saved := new(mockSavedJobRepo)
	svc := NewSavedJobService(saved, new(mockJobRepo))

	saved.On("ListBySeeker", mock.Anything, "seeker-1").Return([]models.SavedJob{
		{BaseModel: models.BaseModel{ID: "s-2"}, Job: activeJob()},
		{BaseModel: models.BaseModel{ID: "s-1"}, Job: activeJob()},
	}, nil)

	list, err := svc.List(nil, seekerViewer)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s-2", list[0].ID)
	assert.Equal(t, "job-1", list[0].Job.ID)
}
