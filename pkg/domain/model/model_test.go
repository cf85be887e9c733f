package model_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/folio/pkg/domain/model"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func ptr[T any](v T) *T { return &v }

func TestRepositorySummaryDescription(t *testing.T) {
	t.Run("returns description when present", func(t *testing.T) {
		repo := &model.RepositorySummary{Description: ptr("my tool")}
		gt.V(t, repo.DescriptionOr("none")).Equal("my tool")
	})

	t.Run("returns placeholder when nil", func(t *testing.T) {
		repo := &model.RepositorySummary{}
		gt.V(t, repo.DescriptionOr("none")).Equal("none")
	})

	t.Run("returns placeholder when empty", func(t *testing.T) {
		repo := &model.RepositorySummary{Description: ptr("")}
		gt.V(t, repo.DescriptionOr("none")).Equal("none")
	})
}

func TestRepositorySummaryStars(t *testing.T) {
	gt.V(t, (&model.RepositorySummary{}).Stars()).Equal(0)
	gt.V(t, (&model.RepositorySummary{StargazersCount: 12}).Stars()).Equal(12)
	gt.V(t, (&model.RepositorySummary{StargazersCount: -1}).Stars()).Equal(0)
}

func TestFilterForks(t *testing.T) {
	repos := []*model.RepositorySummary{
		{Name: "a"},
		{Name: "b", Fork: true},
		nil,
		{Name: "c"},
	}

	result := model.FilterForks(repos)
	gt.A(t, result).Length(2)
	gt.V(t, result[0].Name).Equal("a")
	gt.V(t, result[1].Name).Equal("c")

	gt.A(t, model.FilterForks(nil)).Length(0)
}

func TestSlot(t *testing.T) {
	t.Run("set replaces content", func(t *testing.T) {
		slot := model.NewSlot(types.TargetAboutContent)
		gt.V(t, slot.Key()).Equal(types.TargetAboutContent)
		gt.V(t, slot.Get()).Equal(model.Fragment(""))

		slot.Set("<p>loading</p>")
		slot.Set("<p>done</p>")
		gt.V(t, slot.Get()).Equal(model.Fragment("<p>done</p>"))
	})

	t.Run("wait returns final content after done", func(t *testing.T) {
		slot := model.NewSlot(types.TargetProjectsList)

		go func() {
			time.Sleep(10 * time.Millisecond)
			slot.Set("<div>cards</div>")
			slot.Done()
		}()

		got := slot.Wait(context.Background())
		gt.V(t, got).Equal(model.Fragment("<div>cards</div>"))
		gt.True(t, slot.Finished())
	})

	t.Run("wait returns current content when context expires", func(t *testing.T) {
		slot := model.NewSlot(types.TargetAboutContent)
		slot.Set("<p>loading</p>")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		gt.V(t, slot.Wait(ctx)).Equal(model.Fragment("<p>loading</p>"))
		gt.False(t, slot.Finished())
	})

	t.Run("done can be called concurrently", func(t *testing.T) {
		slot := model.NewSlot(types.TargetAboutContent)
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				slot.Done()
			}()
		}
		wg.Wait()
		gt.True(t, slot.Finished())
	})
}

func TestNewPage(t *testing.T) {
	page := model.NewPage()
	gt.V(t, page.About.Key()).Equal(types.TargetAboutContent)
	gt.V(t, page.Projects.Key()).Equal(types.TargetProjectsList)
}

func TestPageTitle(t *testing.T) {
	page := model.NewPage()
	gt.V(t, page.TitleOr("Portfolio")).Equal("Portfolio")

	page.SetTitle("About me")
	gt.V(t, page.TitleOr("Portfolio")).Equal("About me")
}
