// Package content holds the static profile, project and recommendation data served by the API.
package content

import (
	"math/rand/v2"

	"github.com/tinoosan/portfolio/internal/portfolio"
)

var projects = []portfolio.Project{
	{
		ID:               1,
		Title:            "Next.js 블로그 예제",
		ShortDescription: "간단한 기술 블로그. 글 목록과 상세 페이지를 가진 정적 사이트.",
		TechStack:        []string{"Next.js", "TypeScript", "MDX"},
		GitHubURL:        "https://github.com/your-github/nextjs-blog-example",
		LiveURL:          "https://your-portfolio-blog-demo.site",
	},
	{
		ID:               2,
		Title:            "사이드 프로젝트 대시보드",
		ShortDescription: "사이드 프로젝트들의 진행 상황을 모아서 보는 미니 대시보드.",
		TechStack:        []string{"React", "Recharts", "Tailwind CSS"},
		GitHubURL:        "https://github.com/your-github/side-project-dashboard",
		LiveURL:          "https://your-dashboard-demo.site",
	},
	{
		ID:               3,
		Title:            "REST API 백엔드",
		ShortDescription: "간단한 인증과 CRUD 기능을 가진 REST API 서버.",
		TechStack:        []string{"Node.js", "Express", "PostgreSQL"},
		GitHubURL:        "https://github.com/your-github/rest-api-example",
		LiveURL:          "https://your-api-docs-demo.site",
	},
}

var profile = portfolio.Profile{
	Name:    "닉네임 / 이름",
	Role:    "Full-stack / Frontend Developer",
	Summary: "사용자 경험과 코드 품질을 함께 신경 쓰는 개발자입니다. 사이드 프로젝트와 학습 결과물을 꾸준히 만들고 기록합니다.",
	Contact: portfolio.Contact{
		Email:   "your-email@example.com",
		GitHub:  "https://github.com/your-github",
		Website: "https://your-portfolio.site",
	},
	Skills: portfolio.Skills{
		Languages: []string{"TypeScript", "JavaScript", "Python", "SQL"},
		Frontend:  []string{"React", "Next.js", "Tailwind CSS"},
		Backend:   []string{"Node.js", "Express", "NestJS"},
		Etc:       []string{"Git / GitHub", "REST API", "Clean Code"},
	},
}

var recommendations = []portfolio.Recommendation{
	{ID: 1, Category: portfolio.CategoryVibeCoding, Text: "바이브 코딩의 첫 코드는 완벽할 필요가 없습니다. 중요한 건 오늘도 키보드를 두드렸다는 사실입니다."},
	{ID: 2, Category: portfolio.CategoryVibeCoding, Text: "새로운 버그는 당신이 한 걸음 더 나아갔다는 증거입니다. 겁내지 말고 디버깅을 즐겨보세요."},
	{ID: 3, Category: portfolio.CategoryVibeCoding, Text: "코드를 잘 짜는 것보다 중요한 건, 내 생각을 코드로 끝까지 표현해 보는 경험입니다."},
	{ID: 4, Category: portfolio.CategorySuccessEncyclopedia, Text: "성공지식백과는 정답을 찾는 곳이 아니라, 스스로 답을 만들 수 있도록 도와주는 질문들의 모음입니다."},
	{ID: 5, Category: portfolio.CategorySuccessEncyclopedia, Text: "오늘 한 줄 정리: ‘작게 시작하되, 끝까지 완성하자.’ 이것이 성공지식백과가 말하는 실전 공부법입니다."},
	{ID: 6, Category: portfolio.CategoryVibeCoding, Text: "튜토리얼을 벗어나 나만의 작은 프로젝트를 만드는 순간, 진짜 성장 곡선이 시작됩니다."},
	{ID: 7, Category: portfolio.CategorySuccessEncyclopedia, Text: "지식을 쌓는 것보다 중요한 건, 그 지식으로 무엇을 만들어 보았는가입니다."},
	{ID: 8, Category: portfolio.CategoryVibeCoding, Text: "에러 로그는 당신을 혼내는 게 아니라, 다음 단계로 안내하는 친절한 네비게이션입니다."},
}

// Catalog serves the static content. The zero value is not usable; call New.
type Catalog struct {
	intn func(n int) int
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithRand replaces the random index source used by Recommend.
func WithRand(intn func(n int) int) Option {
	return func(c *Catalog) { c.intn = intn }
}

// New returns a catalog backed by the built-in content.
func New(opts ...Option) *Catalog {
	c := &Catalog{intn: rand.IntN}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Profile returns the developer profile, including a copy of the project list.
func (c *Catalog) Profile() portfolio.Profile {
	p := profile
	p.Projects = c.Projects()
	return p
}

// Projects returns a copy of the project list.
func (c *Catalog) Projects() []portfolio.Project {
	out := make([]portfolio.Project, len(projects))
	copy(out, projects)
	return out
}

// Total returns the number of recommendations across all categories.
func (c *Catalog) Total() int { return len(recommendations) }

// Recommend picks a random recommendation. A known category restricts the pool;
// an empty or unknown category draws from every recommendation.
func (c *Catalog) Recommend(category portfolio.Category) portfolio.Recommendation {
	pool := recommendations
	if category.Valid() {
		pool = make([]portfolio.Recommendation, 0, len(recommendations))
		for _, r := range recommendations {
			if r.Category == category {
				pool = append(pool, r)
			}
		}
	}
	return pool[c.intn(len(pool))]
}
