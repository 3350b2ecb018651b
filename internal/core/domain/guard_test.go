package domain

import "testing"

func TestAuthorize(t *testing.T) {
	admin := Session{Authenticated: true, User: &User{ID: 1, Role: RoleAdmin}}
	professor := Session{Authenticated: true, User: &User{ID: 2, Role: RoleProfessor}}

	cases := []struct {
		name    string
		session Session
		roles   []string
		want    Decision
	}{
		{"anonymous", AnonymousSession(), nil, Decision{Outcome: RedirectLogin, Location: "/login?from=%2Freservas%2Fnovo"}},
		{"anonymous with roles", AnonymousSession(), []string{RoleAdmin}, Decision{Outcome: RedirectLogin, Location: "/login?from=%2Freservas%2Fnovo"}},
		{"no roles configured", professor, nil, Decision{Outcome: Allow}},
		{"role allowed", admin, []string{RoleAdmin}, Decision{Outcome: Allow}},
		{"role denied", professor, []string{RoleAdmin}, Decision{Outcome: RedirectHome, Location: HomePath}},
		{"authenticated without user", Session{Authenticated: true}, []string{RoleAdmin}, Decision{Outcome: RedirectHome, Location: HomePath}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Authorize(tc.session, "/reservas/novo", tc.roles); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestAuthorize_NoRequestedLocation(t *testing.T) {
	got := Authorize(AnonymousSession(), "", nil)
	if got.Location != LoginPath {
		t.Fatalf("expected bare login path, got %q", got.Location)
	}
}
