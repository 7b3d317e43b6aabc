package extraction

import (
	"context"
	"time"

	"github.com/rosterhq/roster/internal/application/service"
	"github.com/rosterhq/roster/internal/domain/portfolio"
	"github.com/rosterhq/roster/pkg/logger"
	"go.uber.org/zap"
)

type stubExtractor struct {
	delay time.Duration
	log   logger.Logger
}

// NewStubExtractor returns an Extractor that answers every URL with the same
// canned record after a fixed delay, standing in for the real scraping
// service until one exists.
func NewStubExtractor(delay time.Duration, log logger.Logger) service.Extractor {
	return &stubExtractor{delay: delay, log: log}
}

func (e *stubExtractor) Extract(ctx context.Context, portfolioURL string) (*service.ExtractionResult, error) {
	e.log.Debug("extracting portfolio", zap.String("url", portfolioURL))

	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return cannedResult(), nil
}

// cannedResult builds a fresh copy per call so callers can mutate freely.
func cannedResult() *service.ExtractionResult {
	return &service.ExtractionResult{
		BasicInfo: portfolio.BasicInfo{
			FirstName: "Sonu",
			LastName:  "Choudhary",
			Summary:   "Creative video editor with a passion for storytelling through visual media.",
		},
		Employers: []portfolio.Employer{
			{
				Name:           "Example Client",
				JobTitle:       "Senior Video Editor",
				Duration:       "2022 - Present",
				EmploymentType: portfolio.EmploymentContract,
				Contribution:   "Led video editing for major brand campaigns and social media content.",
				Videos: []portfolio.Video{
					{
						Title:     "Brand Campaign 2023",
						URL:       "https://example.com/video1",
						Thumbnail: "https://example.com/thumb1.jpg",
					},
				},
			},
		},
	}
}
