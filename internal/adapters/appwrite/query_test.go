package appwrite

import "testing"

func TestQuery_Encode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		q    Query
		want string
	}{
		{OrderDesc("$createdAt"), `{"method":"orderDesc","attribute":"$createdAt"}`},
		{Offset(25), `{"method":"offset","values":[25]}`},
		{Limit(25), `{"method":"limit","values":[25]}`},
		{Equal("tags", "go"), `{"method":"equal","attribute":"tags","values":["go"]}`},
		{Search("title", "reverse"), `{"method":"search","attribute":"title","values":["reverse"]}`},
		{Contains("content", "reverse"), `{"method":"contains","attribute":"content","values":["reverse"]}`},
	}
	for _, tc := range cases {
		if got := tc.q.Encode(); got != tc.want {
			t.Fatalf("Encode(%s) = %s, want %s", tc.q.Method, got, tc.want)
		}
	}
}

func TestQuery_OrNests(t *testing.T) {
	t.Parallel()

	got := Or(Search("title", "x"), Search("content", "x")).Encode()
	want := `{"method":"or","queries":[` +
		`{"method":"search","attribute":"title","values":["x"]},` +
		`{"method":"search","attribute":"content","values":["x"]}]}`
	if got != want {
		t.Fatalf("Or = %s, want %s", got, want)
	}
}

func TestEncodeQueries(t *testing.T) {
	t.Parallel()

	if encodeQueries(nil) != nil {
		t.Fatal("empty queries should encode to nil values")
	}
	v := encodeQueries([]Query{Limit(1), Offset(0)})
	if got := v["queries[]"]; len(got) != 2 {
		t.Fatalf("queries[] = %v", got)
	}
}

func TestPermissionStrings(t *testing.T) {
	t.Parallel()

	if got := PermissionRead(RoleAny()); got != `read("any")` {
		t.Fatalf("read = %s", got)
	}
	if got := PermissionUpdate(RoleUser("u1")); got != `update("user:u1")` {
		t.Fatalf("update = %s", got)
	}
	if got := PermissionDelete(RoleUser("u1")); got != `delete("user:u1")` {
		t.Fatalf("delete = %s", got)
	}
}
