package x11

import "testing"

func TestFrameGeometry(t *testing.T) {
	tests := []struct {
		name   string
		client Geometry
		ext    FrameExtents
		want   Geometry
	}{
		{
			name:   "undecorated",
			client: Geometry{X: 100, Y: 50, Width: 400, Height: 550},
			want:   Geometry{X: 100, Y: 50, Width: 400, Height: 550},
		},
		{
			name:   "border and title bar",
			client: Geometry{X: 104, Y: 80, Width: 400, Height: 550},
			ext:    FrameExtents{Left: 4, Right: 4, Top: 30, Bottom: 4},
			want:   Geometry{X: 100, Y: 50, Width: 408, Height: 584},
		},
		{
			name:   "client shadow on a second monitor",
			client: Geometry{X: 1930, Y: 10, Width: 800, Height: 600},
			ext:    FrameExtents{Left: 10, Right: 10, Top: 10, Bottom: 10},
			want:   Geometry{X: 1920, Y: 0, Width: 820, Height: 620},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameGeometry(tt.client, tt.ext); got != tt.want {
				t.Fatalf("frameGeometry() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// A frame read by Geometry and written back by MoveWindow must land the
// client where it was: the move targets the frame origin, not the client.
func TestFrameGeometry_MoveRoundTrip(t *testing.T) {
	ext := FrameExtents{Left: 2, Right: 2, Top: 24, Bottom: 2}
	client := Geometry{X: 302, Y: 224, Width: 640, Height: 480}

	frame := frameGeometry(client, ext)
	// The window manager places the frame at the requested origin and the
	// client inside it.
	placed := Geometry{X: frame.X + ext.Left, Y: frame.Y + ext.Top, Width: client.Width, Height: client.Height}
	if placed != client {
		t.Fatalf("client moved from %+v to %+v", client, placed)
	}

	w, h := clientSize(frame.Width, frame.Height, ext)
	if w != client.Width || h != client.Height {
		t.Fatalf("clientSize() = %dx%d, want %dx%d", w, h, client.Width, client.Height)
	}
}

func TestClientSize_ClampsToOnePixel(t *testing.T) {
	w, h := clientSize(5, 10, FrameExtents{Left: 4, Right: 4, Top: 30, Bottom: 4})
	if w != 1 || h != 1 {
		t.Fatalf("clientSize() = %dx%d, want 1x1", w, h)
	}
}
