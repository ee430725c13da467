package matchsrv

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/visuscan/visuscan/pkg/kernel"
	"github.com/visuscan/visuscan/screening/match"
)

// SimilarityScorer computes the semantic similarity of two texts in [0,1].
type SimilarityScorer interface {
	Score(ctx context.Context, a, b string) (float64, error)
}

// Service compares a parsed resume against a parsed job description.
// Missing document keys never fail the comparison; defaults are
// substituted instead.
type Service struct {
	scorer SimilarityScorer
}

func NewService(scorer SimilarityScorer) *Service {
	return &Service{scorer: scorer}
}

// Compare derives a similarity score over the documents' skill, experience
// and project text, classifies it, and builds the highlights list.
func (s *Service) Compare(ctx context.Context, resumeDoc, jdDoc kernel.Document) (*match.Result, error) {
	resumeSkills := lowerSet(resumeDoc.StringSlice("Skills"))
	jdSkills := lowerSet(jdDoc.StringSlice("Skills Required"))

	overlapping := intersect(resumeSkills, jdSkills)
	missing := subtract(jdSkills, resumeSkills)

	projects := resumeDoc.List("Projects")

	resumeText := strings.Join([]string{
		resumeDoc.String("Total Experience Summary", ""),
		strings.Join(resumeDoc.StringSlice("Skills"), " "),
		strings.Join(projectDescriptions(projects), " "),
	}, " ")

	jdText := strings.Join([]string{
		strings.Join(jdDoc.StringSlice("Skills Required"), " "),
		strings.Join(jdDoc.StringSlice("Key Responsibilities"), " "),
		strings.Join(jdDoc.StringSlice("Preferred Qualifications"), " "),
	}, " ")

	score, err := s.scorer.Score(ctx, resumeText, jdText)
	if err != nil {
		return nil, match.ErrComparisonFailed().
			WithMessage(fmt.Sprintf("Error computing relevance: %v", err))
	}

	candidateExp := resumeDoc.Value("Years of Experience", "N/A")
	requiredExp := jdDoc.Value("Years of Experience Required", "N/A")

	highlights := []string{
		fmt.Sprintf("Experience: Candidate has %v years vs required %v", candidateExp, requiredExp),
		fmt.Sprintf("Skills matched: %d out of %d", len(overlapping), len(jdSkills)),
	}

	if len(overlapping) > 0 {
		highlights = append(highlights, "Overlapping skills: "+strings.Join(sorted(overlapping), ", "))
	}
	if len(missing) > 0 {
		highlights = append(highlights, "Missing skills: "+strings.Join(sorted(missing), ", "))
	}

	if len(projects) > 0 {
		highlights = append(highlights, "Resume includes relevant project experience.")
	} else {
		highlights = append(highlights, "No projects listed in resume.")
	}

	return &match.Result{
		Score:      score,
		Verdict:    match.Classify(score),
		Highlights: highlights,
	}, nil
}

// projectDescriptions coerces each project entry to its description field
// when it is an object, or its literal text otherwise.
func projectDescriptions(projects []any) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		if obj, ok := p.(map[string]any); ok {
			out = append(out, kernel.Document(obj).String("Description", ""))
			continue
		}
		out = append(out, fmt.Sprint(p))
	}
	return out
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func subtract(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
