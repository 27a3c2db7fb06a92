package test

import (
	"time"

	"go.uber.org/mock/gomock"

	"forget/dal"
	"forget/test/mocks"
)

func setupDummyLogger(mockLogger *mocks.MockILogger) {
	// Every method is variadic; the second Any covers the trailing args so
	// calls with format arguments match too.
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

// setupDummyMetrics is for tests that don't assert on instrumentation.
func setupDummyMetrics(ctrl *gomock.Controller, mockMetrics *mocks.MockIMetrics) {
	obs := mocks.NewMockIRequestObserver(ctrl)
	obs.EXPECT().Finish().AnyTimes()
	mockMetrics.EXPECT().StartSync(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartDeleteBatch(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().PostsMerged(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PostsDeleted(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().TokenPurged(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ProviderError(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().AccountCount(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().DbFileSize(gomock.Any()).AnyTimes()
}

func makePost(id string, createdAt time.Time, favourite bool) *dal.Post {
	return &dal.Post{
		Id:        id,
		AuthorId:  "mastodon:example.social:42",
		CreatedAt: createdAt,
		Body:      "body of " + id,
		Favourite: favourite,
	}
}
