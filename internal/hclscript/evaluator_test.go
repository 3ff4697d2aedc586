package hclscript

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/scenescript/internal/decoder"
	"github.com/specialistvlad/scenescript/internal/luascript"
	"github.com/specialistvlad/scenescript/internal/script"
	"github.com/specialistvlad/scenescript/internal/value"
)

const bobHCL = `
# A single actor with a couple of properties.
SceneTimelineAddFileData("bob", {
  actors = {
    "Bob" = {
      properties = {
        Appearance = { events = [{ (0.5) = { creatureID = cid(123), fileDataID = fid(77), smoothPhase = true } }] }
        Transform = {
          events = [
            { (0) = { transform = { position = { x = 1, y = 2, z = 3 }, yaw = 90, pitch = 0, roll = 0 } } },
          ]
        }
        MoveSpline = {
          events = {
            flags = { overrideSpeed = 3.5, useModelWalkSpeed = true }
            (1.5) = { position = { position = { x = 4, y = 5, z = 6 }, yaw = 0, pitch = 0, roll = 0 } }
          }
        }
        Glow = { events = [{ (0) = { intensity = 1 } }] }
      }
    }
  }
})
`

const bobLua = `
SceneTimelineAddFileData("bob", {
  actors = {
    ["Bob"] = {
      properties = {
        Appearance = { events = { { [0.5] = { creatureID = cid(123), fileDataID = fid(77), smoothPhase = true } } } },
        Transform = {
          events = {
            { [0] = { transform = { position = { x = 1, y = 2, z = 3 }, yaw = 90, pitch = 0, roll = 0 } } },
          },
        },
        MoveSpline = {
          events = {
            { [{}] = { overrideSpeed = 3.5, useModelWalkSpeed = true } },
            { [1.5] = { position = { position = { x = 4, y = 5, z = 6 }, yaw = 0, pitch = 0, roll = 0 } } },
          },
        },
        Glow = { events = { { [0] = { intensity = 1 } } } },
      },
    },
  },
})
`

func TestEvaluate_SameSceneAsLua(t *testing.T) {
	ctx := context.Background()
	dec := decoder.New()

	hclRoot, err := New().Evaluate(ctx, "bob.hcl", []byte(bobHCL))
	require.NoError(t, err)
	fromHCL, err := dec.Decode(ctx, hclRoot)
	require.NoError(t, err)

	luaRoot, err := luascript.New().Evaluate(ctx, "bob.lua", []byte(bobLua))
	require.NoError(t, err)
	fromLua, err := dec.Decode(ctx, luaRoot)
	require.NoError(t, err)

	require.Contains(t, fromHCL.Actors, "Bob")
	assert.Equal(t, []string{"Appearance", "MoveSpline", "Transform"}, fromHCL.Actors["Bob"].Properties.Present())
	if diff := cmp.Diff(fromLua, fromHCL); diff != "" {
		t.Errorf("HCL and Lua timelines differ (-lua +hcl):\n%s", diff)
	}
}

func TestEvaluate_KeyKinds(t *testing.T) {
	root, err := New().Evaluate(context.Background(), "keys.hcl",
		[]byte(`{ zeta = 1, "quoted key" = 2, (0.25) = 3, alpha = [10, 20] }`))
	require.NoError(t, err)

	assert.Equal(t, `{ zeta = 1, ["quoted key"] = 2, [0.25] = 3, alpha = { [1] = 10, [2] = 20 } }`, root.String())
}

func TestEvaluate_EvaluatedValues(t *testing.T) {
	root, err := New().Evaluate(context.Background(), "expr.hcl",
		[]byte(`{ sum = 1 + 2, text = "a${"b"}", id = iid("42"), on = !false }`))
	require.NoError(t, err)

	tbl, ok := root.AsTable()
	require.True(t, ok)
	expect := map[string]value.Value{
		"sum":  value.Number(3),
		"text": value.String("ab"),
		"id":   value.Number(42),
		"on":   value.Bool(true),
	}
	for name, want := range expect {
		got, ok := tbl.Field(name)
		require.True(t, ok, name)
		assert.True(t, want.Equal(got), "%s: want %s, got %s", name, want, got)
	}
}

func TestEvaluate_Blank(t *testing.T) {
	for _, src := range []string{"", "# nothing\n", "// note\n/* block */\n"} {
		root, err := New().Evaluate(context.Background(), "doc.hcl", []byte(src))
		require.NoError(t, err)
		assert.True(t, root.IsNil())
	}
}

func TestEvaluate_Failures(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "syntax error", src: `{ actors = `},
		{name: "unknown function", src: `{ x = print(1) }`},
		{name: "unknown variable", src: `{ x = y }`},
		{name: "null key", src: `{ (null) = 1 }`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New().Evaluate(context.Background(), "bad.hcl", []byte(tc.src))

			require.ErrorIs(t, err, script.ErrEvaluation)
			var evalErr *script.EvaluationError
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, "bad.hcl", evalErr.Name)
		})
	}
}

func TestEvaluate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Evaluate(ctx, "scene.hcl", []byte(`{ actors = {} }`))

	require.ErrorIs(t, err, context.Canceled)
}
