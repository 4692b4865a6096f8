package reportpdf

import "testing"

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"default", "boring"} {
		theme, ok := ThemeByName(name)
		if !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
		if theme.Name() != name {
			t.Fatalf("theme name = %q, want %q", theme.Name(), name)
		}
	}
	if _, ok := ThemeByName("dracula"); ok {
		t.Fatalf("unexpected theme %q", "dracula")
	}

	available := AvailableThemes()
	present := make(map[string]struct{}, len(available))
	for _, name := range available {
		present[name] = struct{}{}
	}
	for _, name := range []string{"default", "boring"} {
		if _, ok := present[name]; !ok {
			t.Fatalf("expected theme %q in available list", name)
		}
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultTheme().Palette()
	cases := []struct {
		name string
		got  Color
		want Color
	}{
		{"primary", p.Primary, Color{91, 2, 2}},
		{"success", p.Success, Color{22, 101, 52}},
		{"warning", p.Warning, Color{146, 64, 14}},
		{"danger", p.Danger, Color{153, 27, 27}},
		{"info", p.Info, Color{30, 64, 175}},
		{"neutral", p.Neutral, Color{55, 65, 81}},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestThemeColorRoles(t *testing.T) {
	theme := DefaultTheme()
	p := theme.Palette()
	cases := []struct {
		role ColorRole
		want Color
	}{
		{RolePrimary, p.Primary},
		{RoleSuccess, p.Success},
		{RoleWarning, p.Warning},
		{RoleDanger, p.Danger},
		{RoleInfo, p.Info},
		{RoleNeutral, p.Neutral},
	}
	for _, tc := range cases {
		if got := theme.Color(tc.role); got != tc.want {
			t.Fatalf("Color(%v) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestBoringThemeIsMonochrome(t *testing.T) {
	theme := BoringTheme()
	black := Color{0, 0, 0}
	for _, role := range []ColorRole{RolePrimary, RoleSuccess, RoleWarning, RoleDanger, RoleInfo, RoleNeutral} {
		if got := theme.Color(role); got != black {
			t.Fatalf("boring Color(%v) = %v, want black", role, got)
		}
	}
}
