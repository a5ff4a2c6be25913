package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeArray(t *testing.T) {
	got := Serialize([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0}, "")
	assert.Equal(t, "0=1&1=2&2=3&3=4&4=5&5=6&6=7&7=8&8=9&9=0", got)
}

func TestSerializeObject(t *testing.T) {
	got := Serialize(map[string]any{"first": 1, "second": 2, "third": 3}, "")
	assert.Equal(t, "first=1&second=2&third=3", got)
}

func TestSerializeNested(t *testing.T) {
	message := map[string]any{
		"subject":   "Hello & welcome",
		"to_email":  []string{"a@example.com", "b@example.com"},
		"from_name": "Chimp",
		"html":      "",
	}
	got := Serialize(message, "message")
	assert.Equal(t,
		"message[from_name]=Chimp&message[subject]=Hello%20%26%20welcome&message[to_email][0]=a%40example.com&message[to_email][1]=b%40example.com",
		got)
}

func TestSerializeSkipsEmptyMembers(t *testing.T) {
	got := Serialize(map[string]any{"a": 0, "b": false, "c": nil, "d": "", "e": "x"}, "")
	assert.Equal(t, "e=x", got)
}

func TestSerializeKeepsEmptyArrayElements(t *testing.T) {
	assert.Equal(t, "tags[0]=0&tags[1]=false", Serialize([]any{0, false}, "tags"))
}

func TestSerializeScalars(t *testing.T) {
	assert.Equal(t, "track_opens=true", Serialize(true, "track_opens"))
	assert.Equal(t, "tag_id=12", Serialize(12, "tag_id"))
	assert.Equal(t, "ratio=0.5", Serialize(0.5, "ratio"))
	assert.Equal(t, "", Serialize(nil, "since"))
}

func TestSerializeStruct(t *testing.T) {
	type address struct {
		Email string `json:"email"`
		Name  string `json:"name,omitempty"`
	}
	assert.Equal(t, "to[email]=x%40y.z", Serialize(address{Email: "x@y.z"}, "to"))
}

func TestSerializeEmptyContainers(t *testing.T) {
	assert.Equal(t, "", Serialize(map[string]any{}, "m"))
	assert.Equal(t, "", Serialize([]string{}, "tags"))
	assert.Equal(t, "b=1", Serialize(map[string]any{"a": map[string]any{}, "b": 1}, ""))
}

func TestEncodeURIComponent(t *testing.T) {
	tests := map[string]string{
		"abc-_.!~*'()":   "abc-_.!~*'()",
		"a b":            "a%20b",
		"a+b=c&d":        "a%2Bb%3Dc%26d",
		"ünï":            "%C3%BCn%C3%AF",
		`{"apikey":"k"}`: "%7B%22apikey%22%3A%22k%22%7D",
	}
	for in, want := range tests {
		assert.Equal(t, want, EncodeURIComponent(in), in)
	}
}
