package where

import (
	"path/filepath"
	"testing"

	"github.com/prism-vault/prism/filesystem"
	"github.com/prism-vault/prism/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("SyncReport() lives in the cache directory", func() {
			So(filepath.Dir(SyncReport()), ShouldEqual, Cache())
		})

		Convey("Vault()", func() {
			viper.Set(key.VaultPath, "/notes")
			So(Vault(), ShouldEqual, "/notes")

			viper.Set(key.VaultPath, "")
			So(filepath.IsAbs(Vault()), ShouldBeTrue)
		})
	})
}
