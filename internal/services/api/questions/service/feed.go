package service

import (
	"context"

	"askforge/internal/adapters/appwrite"
	perr "askforge/internal/platform/errors"
	"askforge/internal/platform/logger"
	"askforge/internal/services/api/questions/domain"
)

// pageSize is fixed; pagination is page-number based
const pageSize = 25

// placeholderAuthor stands in for a deleted or unreadable identity record
func placeholderAuthor() domain.AuthorSummary {
	return domain.AuthorSummary{Name: "deleted user"}
}

// Feed resolves one feed page with progressive query degradation and
// concurrent per-question enrichment
func (s *Svc) Feed(ctx context.Context, in domain.FeedInput) (domain.FeedPage, error) {
	if in.Page < 1 {
		in.Page = 1
	}

	list, err := s.resolve(ctx, in)
	if err != nil {
		return domain.FeedPage{}, err
	}

	items, err := s.enrichPage(ctx, list.Documents)
	if err != nil {
		return domain.FeedPage{}, err
	}
	return domain.FeedPage{Total: list.Total, Documents: items}, nil
}

// feedPlan is one named query plan in the degradation ladder
type feedPlan struct {
	name    string
	queries []appwrite.Query
}

// feedPlans builds the ordered ladder for the given input
// full-text first, then containment when a search term exists, then baseline
// each plan is a pure function of the input; plans are never raced
func feedPlans(in domain.FeedInput) []feedPlan {
	base := func() []appwrite.Query {
		qs := []appwrite.Query{
			appwrite.OrderDesc("$createdAt"),
			appwrite.Offset((in.Page - 1) * pageSize),
			appwrite.Limit(pageSize),
		}
		if in.Tag != "" {
			qs = append(qs, appwrite.Equal("tags", in.Tag))
		}
		return qs
	}

	if in.Search == "" {
		// without a search term every tier collapses into the baseline plan
		return []feedPlan{{name: "baseline", queries: base()}}
	}
	return []feedPlan{
		{name: "fulltext", queries: append(base(), appwrite.Or(
			appwrite.Search("title", in.Search),
			appwrite.Search("content", in.Search),
		))},
		{name: "contains", queries: append(base(), appwrite.Or(
			appwrite.Contains("title", in.Search),
			appwrite.Contains("content", in.Search),
		))},
		{name: "baseline", queries: base()},
	}
}

// resolve walks the ladder until a plan succeeds
// only the final plan's failure surfaces; earlier failures degrade silently
func (s *Svc) resolve(ctx context.Context, in domain.FeedInput) (appwrite.DocumentList, error) {
	plans := feedPlans(in)

	var lastErr error
	for _, p := range plans {
		list, err := s.Repo.ListQuestions(ctx, p.queries)
		if err == nil {
			return list, nil
		}
		lastErr = perr.Wrapf(err, perr.ErrorCodeQueryDegraded, "feed plan %s", p.name)
		logger.C(ctx).Warn().Err(err).Str("plan", p.name).Msg("feed plan failed, degrading")
	}
	return appwrite.DocumentList{}, perr.Wrapf(lastErr, perr.ErrorCodeFeedUnavailable, "question feed unavailable")
}

// enrichPage fans enrichment out across the page and waits for every item
func (s *Svc) enrichPage(ctx context.Context, docs []appwrite.Document) ([]domain.EnrichedQuestion, error) {
	out := make([]domain.EnrichedQuestion, len(docs))
	errCh := make(chan error, len(docs))
	for i, doc := range docs {
		go func(i int, doc appwrite.Document) {
			item, err := s.enrich(ctx, doc)
			out[i] = item
			errCh <- err
		}(i, doc)
	}
	var firstErr error
	for range docs {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// enrich issues the three per-question lookups concurrently
// author failures degrade to a placeholder, count failures fail the page
func (s *Svc) enrich(ctx context.Context, doc appwrite.Document) (domain.EnrichedQuestion, error) {
	q := questionFrom(doc)

	var (
		author  domain.AuthorSummary
		answers int
		votes   int
	)
	errCh := make(chan error, 3)

	go func() {
		u, err := s.Repo.Author(ctx, q.AuthorID)
		if err != nil {
			// deleted or unreadable author; keep the question in the page
			logger.C(ctx).Warn().Err(err).Str("author_id", q.AuthorID).Msg("author lookup failed")
			author = placeholderAuthor()
			errCh <- nil
			return
		}
		author = domain.AuthorSummary{ID: u.ID, Name: u.Name, Reputation: u.Reputation()}
		errCh <- nil
	}()
	go func() {
		n, err := s.Repo.CountAnswers(ctx, q.ID)
		answers = n
		errCh <- perr.WrapIf(err, perr.ErrorCodeUpstream, "count answers")
	}()
	go func() {
		n, err := s.Repo.CountVotes(ctx, q.ID)
		votes = n
		errCh <- perr.WrapIf(err, perr.ErrorCodeUpstream, "count votes")
	}()

	var firstErr error
	for i := 0; i < 3; i++ {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return domain.EnrichedQuestion{}, firstErr
	}
	return domain.EnrichedQuestion{
		Question:     q,
		Author:       author,
		TotalAnswers: answers,
		TotalVotes:   votes,
	}, nil
}
