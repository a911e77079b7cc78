package crisis

import "testing"

func TestDetectCrisisPhrases(t *testing.T) {
	t.Parallel()
	d := NewDetector()

	positives := []string{
		"I want to end my life",
		"sometimes i think about SUICIDE",
		"I've been thinking there's no reason to live anymore",
		"i might hurt myself tonight",
		"maybe everyone would be better off dead without me",
	}
	for _, msg := range positives {
		if !d.Detect(msg) {
			t.Fatalf("expected crisis for %q", msg)
		}
	}

	negatives := []string{
		"",
		"   ",
		"I'm stressed about exams",
		"my code keeps dying in CI",
		"I feel overwhelmed by coursework",
	}
	for _, msg := range negatives {
		if d.Detect(msg) {
			t.Fatalf("expected no crisis for %q", msg)
		}
	}
}

func TestDetectIsSubstringContainment(t *testing.T) {
	t.Parallel()
	d := NewDetector()

	if !d.Detect("honestly I just want to end it all at this point") {
		t.Fatal("expected embedded phrase to match")
	}
	if !d.Detect("WANT TO DIE") {
		t.Fatal("expected case-insensitive match")
	}
}

func TestDetectorCustomKeywordsNormalized(t *testing.T) {
	t.Parallel()
	d := NewDetectorWithKeywords([]string{"  Give Up  ", ""})

	if !d.Detect("i might give up on everything") {
		t.Fatal("expected normalized custom keyword to match")
	}
	if d.Detect("all good here") {
		t.Fatal("unexpected match")
	}
}
