package pager

import "testing"

type call struct {
	id   int64
	page int
}

func TestBind(t *testing.T) {
	tests := []struct {
		name       string
		state      State
		prev, next bool
	}{
		{"single page", State{CurrentPage: 1, TotalPages: 1}, false, false},
		{"first of many", State{CurrentPage: 1, TotalPages: 3, HasNext: true}, false, true},
		{"middle", State{CurrentPage: 2, TotalPages: 3, HasPrev: true, HasNext: true}, true, true},
		{"last", State{CurrentPage: 3, TotalPages: 3, HasPrev: true}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []call
			c := Bind(tt.state, 9, func(id int64, page int) {
				calls = append(calls, call{id, page})
			})
			if c.Prev.Enabled != tt.prev || c.Next.Enabled != tt.next {
				t.Fatalf("prev=%v next=%v, want prev=%v next=%v",
					c.Prev.Enabled, c.Next.Enabled, tt.prev, tt.next)
			}

			c.Prev.Click()
			c.Next.Click()

			want := 0
			if tt.prev {
				want++
			}
			if tt.next {
				want++
			}
			if len(calls) != want {
				t.Fatalf("got %d loader calls, want %d", len(calls), want)
			}
			for _, cl := range calls {
				if cl.id != 9 {
					t.Errorf("id %d not passed through", cl.id)
				}
				if cl.page != tt.state.CurrentPage-1 && cl.page != tt.state.CurrentPage+1 {
					t.Errorf("unexpected page %d", cl.page)
				}
			}
		})
	}
}

func TestBindTrustsServerFlags(t *testing.T) {
	// Flags disagree with the numbers; the controls follow the flags.
	s := State{CurrentPage: 1, TotalPages: 4, HasPrev: true, HasNext: false}
	if s.Consistent() {
		t.Fatal("expected inconsistent state")
	}
	c := Bind(s, 0, nil)
	if !c.Prev.Enabled || c.Next.Enabled {
		t.Fatalf("controls recomputed from numbers: %+v", c)
	}
}

func TestConsistentBoundaries(t *testing.T) {
	for total := 1; total <= 6; total++ {
		for cur := 1; cur <= total; cur++ {
			s := State{CurrentPage: cur, TotalPages: total, HasPrev: cur > 1, HasNext: cur < total}
			if !s.Consistent() {
				t.Fatalf("%+v should be consistent", s)
			}
			if cur == 1 && s.HasPrev {
				t.Fatalf("first page has prev: %+v", s)
			}
			if cur == total && s.HasNext {
				t.Fatalf("last page has next: %+v", s)
			}
		}
	}
}
