package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinoosan/portfolio/internal/portfolio"
)

func TestProfileIncludesProjects(t *testing.T) {
	c := New()
	p := c.Profile()
	require.Len(t, p.Projects, 3)
	assert.Equal(t, c.Projects(), p.Projects)
	assert.NotEmpty(t, p.Contact.Email)
}

func TestProjectsReturnsCopy(t *testing.T) {
	c := New()
	ps := c.Projects()
	ps[0].Title = "changed"
	assert.NotEqual(t, "changed", c.Projects()[0].Title)
}

func TestRecommendCategoryFilter(t *testing.T) {
	for i := 0; i < 4; i++ {
		c := New(WithRand(func(n int) int { return i % n }))
		r := c.Recommend(portfolio.CategorySuccessEncyclopedia)
		assert.Equal(t, portfolio.CategorySuccessEncyclopedia, r.Category)
	}
}

func TestRecommendUnknownCategoryUsesFullPool(t *testing.T) {
	var poolSize int
	c := New(WithRand(func(n int) int { poolSize = n; return n - 1 }))
	r := c.Recommend("nope")
	assert.Equal(t, c.Total(), poolSize)
	assert.Equal(t, 8, r.ID)

	_ = c.Recommend("")
	assert.Equal(t, c.Total(), poolSize)
}

func TestRecommendDefaultRand(t *testing.T) {
	c := New()
	for i := 0; i < 50; i++ {
		r := c.Recommend(portfolio.CategoryVibeCoding)
		require.Equal(t, portfolio.CategoryVibeCoding, r.Category)
	}
}

func TestCatalogServesSiteText(t *testing.T) {
	c := New(WithRand(func(int) int { return 0 }))
	p := c.Profile()
	assert.Equal(t, "닉네임 / 이름", p.Name)
	assert.Equal(t, "Next.js 블로그 예제", p.Projects[0].Title)
	assert.Equal(t, "REST API 백엔드", c.Projects()[2].Title)

	r := c.Recommend(portfolio.CategorySuccessEncyclopedia)
	assert.Equal(t, 4, r.ID)
	assert.Equal(t, "성공지식백과는 정답을 찾는 곳이 아니라, 스스로 답을 만들 수 있도록 도와주는 질문들의 모음입니다.", r.Text)
}
