package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTrayDefaultsAndFlush(t *testing.T) {
	tray := NewTray(2500*time.Millisecond, 0)
	tray.Notify("first", KindInfo, Options{})
	tray.Notify("second", KindSuccess, Options{AutoClose: time.Second, Icon: "activity"})

	fresh := tray.Flush()
	require.Len(t, fresh, 2)
	require.Equal(t, 2500*time.Millisecond, fresh[0].TTL)
	require.Equal(t, time.Second, fresh[1].TTL)
	require.Equal(t, "activity", fresh[1].Icon)
	require.NotEqual(t, fresh[0].ID, fresh[1].ID)
	require.Empty(t, tray.Flush())
	require.Len(t, tray.Active(), 2)
}

func TestTrayExpire(t *testing.T) {
	tray := NewTray(time.Second, 0)
	tray.Notify("a", KindInfo, Options{})
	tray.Notify("b", KindWarn, Options{})
	fresh := tray.Flush()

	tray.Expire(fresh[0].ID)
	active := tray.Active()
	require.Len(t, active, 1)
	require.Equal(t, "b", active[0].Message)

	tray.Expire("missing")
	tray.Expire(fresh[0].ID)
	require.Len(t, tray.Active(), 1)
}

func TestTrayCap(t *testing.T) {
	tray := NewTray(time.Second, 2)
	tray.Notify("a", KindInfo, Options{})
	tray.Notify("b", KindInfo, Options{})
	tray.Notify("c", KindInfo, Options{})

	active := tray.Active()
	require.Len(t, active, 2)
	require.Equal(t, "b", active[0].Message)
	require.Equal(t, "c", active[1].Message)
	require.Len(t, tray.Flush(), 3)
}

func TestTrayCapReleasesEvicted(t *testing.T) {
	tray := NewTray(time.Second, 2)
	for _, m := range []string{"a", "b", "c", "d", "e"} {
		tray.Notify(m, KindInfo, Options{})
		require.LessOrEqual(t, cap(tray.active), 3)
	}
	require.Equal(t, 2, cap(tray.active))
	require.Equal(t, "d", tray.active[0].Message)
	require.Equal(t, "e", tray.active[1].Message)
}
