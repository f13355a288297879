package entities

import "testing"

func TestCalculateEstimates(t *testing.T) {
	cases := []struct {
		name          string
		width, height float64
		area, cost    float64
	}{
		{name: "linen sheet", width: 120, height: 80, area: 0.96, cost: 12.47},
		{name: "upload placeholder", width: 150, height: 100, area: 1.5, cost: 19.49},
		{name: "square meter", width: 100, height: 100, area: 1, cost: 12.99},
		{name: "small swatch", width: 10, height: 10, area: 0.01, cost: 0.13},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateEstimates(tc.width, tc.height)
			if got.Area != tc.area {
				t.Fatalf("area: expected %v, got %v", tc.area, got.Area)
			}
			if got.Cost != tc.cost {
				t.Fatalf("cost: expected %v, got %v", tc.cost, got.Cost)
			}
		})
	}
}

func TestMethodValid(t *testing.T) {
	for _, m := range []Method{MethodUpload, MethodManual, MethodAR} {
		if !m.Valid() {
			t.Fatalf("expected %s to be valid", m)
		}
	}
	for _, m := range []Method{"", "scale", "UPLOAD"} {
		if m.Valid() {
			t.Fatalf("expected %s to be invalid", m)
		}
	}
}

func TestDraftComplete(t *testing.T) {
	if (MeasurementDraft{Width: 10, Height: 20, Method: MethodManual}).Complete() == false {
		t.Fatalf("expected complete draft")
	}
	incomplete := []MeasurementDraft{
		{Width: 0, Height: 20, Method: MethodManual},
		{Width: 10, Height: 0, Method: MethodManual},
		{Width: 10, Height: 20, Method: "scale"},
	}
	for i, d := range incomplete {
		if d.Complete() {
			t.Fatalf("case %d: expected incomplete draft", i)
		}
	}
}

func TestUploadedFileIsImage(t *testing.T) {
	images := []string{"image/jpeg", "image/png", " IMAGE/GIF "}
	for _, ct := range images {
		if !(UploadedFile{ContentType: ct}).IsImage() {
			t.Fatalf("expected %q to be an image", ct)
		}
	}
	others := []string{"", "application/pdf", "text/html", "video/mp4"}
	for _, ct := range others {
		if (UploadedFile{ContentType: ct}).IsImage() {
			t.Fatalf("expected %q to be rejected", ct)
		}
	}
}
