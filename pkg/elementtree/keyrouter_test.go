package elementtree

import "testing"

func TestKeyRouterScopesToWidgetSubtree(t *testing.T) {
	root := &fakeVisual{}
	inside := &fakeVisual{parent: &fakeVisual{parent: root}}
	outside := &fakeVisual{parent: &fakeVisual{}}
	fallback := &fakeVisual{}

	router := NewKeyRouter(root, fallback)

	tests := []struct {
		name   string
		origin VisualNode
		want   bool
	}{
		{name: "descendant of the widget root", origin: inside, want: true},
		{name: "the widget root itself", origin: root, want: true},
		{name: "global fallback origin", origin: fallback, want: true},
		{name: "foreign subtree", origin: outside, want: false},
		{name: "nil origin", origin: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := router.ShouldHandle(tt.origin); got != tt.want {
				t.Errorf("ShouldHandle() = %v, want %v", got, tt.want)
			}
		})
	}
}
