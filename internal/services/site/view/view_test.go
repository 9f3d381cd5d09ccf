package view

import (
	"reflect"
	"testing"

	"github.com/louisbranch/datalab/internal/content"
)

type testCopy struct{}

func (testCopy) StatusLabel(s content.Status) string { return "status:" + string(s) }
func (testCopy) FilterLabel(f content.Filter) string { return "filter:" + string(f) }
func (testCopy) Research(area string) string         { return "research:" + area }

func sampleProjects() []content.Project {
	return []content.Project{
		{ID: "a", Title: "A", Status: content.StatusOngoing, Tags: []string{"x"}},
		{ID: "b", Title: "B", Status: content.StatusCompleted, Thumbnail: "/img/b.png"},
		{ID: "c", Title: "C", Status: content.StatusOngoing},
		{ID: "d", Title: "D", Status: content.StatusPlanned},
		{ID: "e", Title: "E", Status: content.StatusOngoing},
		{ID: "f", Title: "F", Status: content.StatusOngoing},
		{ID: "g", Title: "G", Status: content.StatusOngoing},
	}
}

func TestProjectsFiltersAndStaggers(t *testing.T) {
	t.Parallel()

	cards := Projects(sampleProjects(), content.FilterOngoing, testCopy{})
	var ids, staggers []string
	for _, c := range cards {
		ids = append(ids, c.ID)
		staggers = append(staggers, c.Stagger)
	}
	if want := []string{"a", "c", "e", "f", "g"}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	if want := []string{"stagger-1", "stagger-2", "stagger-3", "stagger-4", "stagger-1"}; !reflect.DeepEqual(staggers, want) {
		t.Fatalf("staggers = %v, want %v", staggers, want)
	}
	if cards[0].Thumbnail != PlaceholderImage {
		t.Fatalf("Thumbnail = %q, want placeholder", cards[0].Thumbnail)
	}
	if cards[0].Badge != (Badge{Label: "status:ongoing", Color: ColorOngoing}) {
		t.Fatalf("Badge = %+v", cards[0].Badge)
	}
	if cards[0].DetailURL != "/projects/a?filter=ongoing" {
		t.Fatalf("DetailURL = %q, want %q", cards[0].DetailURL, "/projects/a?filter=ongoing")
	}
	if cards[0].PageURL != "/?filter=ongoing&project=a" {
		t.Fatalf("PageURL = %q", cards[0].PageURL)
	}
}

func TestProjectsAllKeepsOrderAndImages(t *testing.T) {
	t.Parallel()

	cards := Projects(sampleProjects(), content.FilterAll, nil)
	if len(cards) != 7 {
		t.Fatalf("len = %d, want 7", len(cards))
	}
	if cards[1].Thumbnail != "/img/b.png" {
		t.Fatalf("Thumbnail = %q, want /img/b.png", cards[1].Thumbnail)
	}
	if cards[1].Badge.Label != "completed" {
		t.Fatalf("Badge.Label = %q, want raw status without copy", cards[1].Badge.Label)
	}
	if got := RevealIDs(cards[:2]); !reflect.DeepEqual(got, []string{"project-card-a", "project-card-b"}) {
		t.Fatalf("RevealIDs() = %v", got)
	}
}

func TestProjectsEmptyResult(t *testing.T) {
	t.Parallel()

	cards := Projects([]content.Project{{ID: "a", Status: content.StatusOngoing}}, content.FilterCompleted, testCopy{})
	if len(cards) != 0 {
		t.Fatalf("len = %d, want 0", len(cards))
	}
}

func TestStatusColor(t *testing.T) {
	t.Parallel()

	cases := map[content.Status]string{
		content.StatusOngoing:   ColorOngoing,
		content.StatusCompleted: ColorCompleted,
		content.StatusPlanned:   ColorPlanned,
		content.Status("odd"):   ColorPlanned,
	}
	for status, want := range cases {
		if got := StatusColor(status); got != want {
			t.Fatalf("StatusColor(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestFiltersExactlyOneActive(t *testing.T) {
	t.Parallel()

	counts := map[content.Filter]int{content.FilterAll: 7, content.FilterOngoing: 5}
	for _, active := range []content.Filter{content.FilterPlanned, "bogus"} {
		controls := Filters(active, counts, testCopy{})
		if len(controls) != 4 {
			t.Fatalf("len = %d, want 4", len(controls))
		}
		var activeCount int
		for _, c := range controls {
			if c.Active {
				activeCount++
			}
		}
		if activeCount != 1 {
			t.Fatalf("active controls = %d, want 1", activeCount)
		}
	}

	controls := Filters(content.FilterOngoing, counts, testCopy{})
	if !controls[1].Active || controls[1].Count != 5 || controls[1].Label != "filter:ongoing" {
		t.Fatalf("ongoing control = %+v", controls[1])
	}
	if controls[0].URL != "/projects?filter=all" || controls[0].PageURL != "/" {
		t.Fatalf("all control urls = %q %q", controls[0].URL, controls[0].PageURL)
	}
	if !Filters("bogus", counts, nil)[0].Active {
		t.Fatal("unknown filter did not fall back to all")
	}
}

func TestMembers(t *testing.T) {
	t.Parallel()

	cards := Members([]content.Member{{Name: "Kim", Image: "/m.png"}, {Name: "Lee"}})
	if cards[0].Image != "/m.png" || cards[1].Image != PlaceholderImage {
		t.Fatalf("images = %q %q", cards[0].Image, cards[1].Image)
	}
	if cards[1].RevealID != "member-2" || cards[1].Stagger != "stagger-2" {
		t.Fatalf("card = %+v", cards[1])
	}
	if got := Members(nil); len(got) != 0 {
		t.Fatalf("Members(nil) = %v, want empty", got)
	}
}

func TestDepartment(t *testing.T) {
	t.Parallel()

	d := Department(content.Department{
		Title: "Statistics",
		URL:   "  ",
		Professors: []content.Professor{
			{Name: "Park", Research: "Bayesian"},
			{Name: "Choi"},
		},
	}, testCopy{})
	if d.HasURL() {
		t.Fatal("blank URL reported as present")
	}
	if d.Professors[0].Research != "research:Bayesian" {
		t.Fatalf("Research = %q", d.Professors[0].Research)
	}
	if d.Professors[1].Research != "" {
		t.Fatalf("empty research formatted to %q", d.Professors[1].Research)
	}
	if d.Professors[1].Image != PlaceholderImage || d.Professors[1].RevealID != "professor-2" {
		t.Fatalf("professor = %+v", d.Professors[1])
	}
}

func TestDetailSplitsLines(t *testing.T) {
	t.Parallel()

	d := Detail(content.Project{
		ID:          "a",
		Title:       "A",
		Description: "first\r\nsecond\n\nfourth",
		Status:      content.StatusCompleted,
		Date:        "2024.03",
	}, testCopy{})
	if want := []string{"first", "second", "", "fourth"}; !reflect.DeepEqual(d.Lines, want) {
		t.Fatalf("Lines = %q, want %q", d.Lines, want)
	}
	if d.Badge.Color != ColorCompleted || d.Thumbnail != PlaceholderImage {
		t.Fatalf("detail = %+v", d)
	}
	if got := Detail(content.Project{ID: "b"}, nil).Lines; got != nil {
		t.Fatalf("Lines = %q, want nil", got)
	}
}
