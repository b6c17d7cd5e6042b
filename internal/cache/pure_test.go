package cache

import "testing"

func TestUserKey(t *testing.T) {
	tests := []struct {
		id   int64
		want string
	}{
		{1, "user:1"},
		{42, "user:42"},
		{9000000000, "user:9000000000"},
	}

	for _, test := range tests {
		if got := userKey(test.id); got != test.want {
			t.Errorf("userKey(%d) = %q, want %q", test.id, got, test.want)
		}
	}
}
