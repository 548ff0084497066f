// Command pulse runs a scripted session against the in-memory data services:
// the same sequence of calls the feed page makes, logged instead of rendered.
package main

import (
	"context"
	"log"
	"log/slog"

	"pulseconnect/internal/bootstrap"
	"pulseconnect/internal/config"
	"pulseconnect/internal/models"
	"pulseconnect/internal/observability"
	"pulseconnect/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	rt, err := bootstrap.InitRuntime(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	ctx := observability.WithCorrelationID(context.Background(), observability.GenerateCorrelationID())
	defer func() {
		if err := rt.Shutdown(context.Background()); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := runSession(ctx, rt); err != nil {
		log.Fatalf("Session failed: %v", err)
	}
}

func runSession(ctx context.Context, rt *bootstrap.Runtime) error {
	logger := observability.GlobalLogger

	stories, err := rt.Stories.GetAll(ctx)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "stories carousel", slog.Int("count", len(stories)))

	feed, err := rt.Posts.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, p := range feed[:min(3, len(feed))] {
		author := "unknown"
		if p.Author != nil {
			author = p.Author.Username
		}
		logger.InfoContext(ctx, "feed post",
			slog.Int("id", p.ID),
			slog.String("author", author),
			slog.Int("likes", p.Likes),
			slog.Any("hashtags", p.Hashtags),
		)
	}

	trending, err := rt.Posts.GetTrendingHashtags(ctx)
	if err != nil {
		return err
	}
	for _, t := range trending {
		logger.InfoContext(ctx, "trending", slog.String("tag", t.Tag), slog.Int("count", t.Count))
	}

	created, err := rt.Posts.Create(ctx, service.CreatePostInput{
		Content:  "Trying out the new compose flow. #hello #pulseconnect",
		Location: "Somewhere nice",
	})
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "composed post", slog.Int("id", created.ID), slog.Any("hashtags", created.Hashtags))

	liked, err := rt.Posts.LikePost(ctx, created.ID)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "liked post", slog.Int("id", liked.ID), slog.Int("likes", liked.Likes))

	if len(stories) > 0 {
		viewed, err := rt.Stories.MarkAsViewed(ctx, stories[0].ID)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "viewed story", slog.Int("id", viewed.ID), slog.Bool("viewed", viewed.Viewed))
	}

	results, err := rt.Users.SearchUsers(ctx, "maya")
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "user search", slog.Int("matches", len(results)))

	// the UI hands identifiers over as strings; coerce the way a detail
	// page would
	postID, err := models.ParseID("Post", "1")
	if err != nil {
		return err
	}
	detail, err := rt.Posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "post detail", slog.Int("id", detail.ID), slog.Int("shares", detail.Shares))

	return nil
}
