package cmdutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFuncMap(t *testing.T) {
	fm := DefaultFuncMap()

	t.Run("json", func(t *testing.T) {
		fn := fm["json"].(func(any) (string, error))
		got, err := fn(map[string]string{"name": "foo"})
		require.NoError(t, err)
		assert.Equal(t, `{"name":"foo"}`, got)
	})

	t.Run("json error", func(t *testing.T) {
		fn := fm["json"].(func(any) (string, error))
		_, err := fn(make(chan int))
		assert.Error(t, err)
	})

	t.Run("quote", func(t *testing.T) {
		fn := fm["quote"].(func(string) string)
		assert.Equal(t, "'a b'", fn("a b"))
		assert.Equal(t, "''", fn(""))
	})

	t.Run("truncate counts runes", func(t *testing.T) {
		fn := fm["truncate"].(func(string, int) string)
		assert.Equal(t, "📂🦀", fn("📂🦀🏠", 2))
		assert.Equal(t, "abc", fn("abc", 5))
		assert.Equal(t, "", fn("abc", -1))
	})
}

func TestExecuteTemplate(t *testing.T) {
	type slot struct {
		Index int
		Value string
	}
	items := ToAny([]slot{{1, "git"}, {2, "~/my proj"}})

	t.Run("one line per item", func(t *testing.T) {
		f, err := ParseFormat("{{.Index}}={{quote .Value}}")
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, ExecuteTemplate(&buf, f, items))
		assert.Equal(t, "1=git\n2='~/my proj'\n", buf.String())
	})

	t.Run("parse error", func(t *testing.T) {
		f, err := ParseFormat("{{.Index")
		require.NoError(t, err)
		err = ExecuteTemplate(&bytes.Buffer{}, f, items)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid template")
	})

	t.Run("execution error", func(t *testing.T) {
		f, err := ParseFormat("{{.Missing}}")
		require.NoError(t, err)
		err = ExecuteTemplate(&bytes.Buffer{}, f, items)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "template execution failed")
	})
}
