package config

import (
	"testing"

	"github.com/prism-vault/prism/filesystem"
	"github.com/prism-vault/prism/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.ThemeMode), ShouldEqual, "dark")
			So(viper.GetBool(key.SyncOnSwitch), ShouldBeTrue)
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("sync.on_switch"), ShouldEqual, "sync_on_switch")
		})

		Convey("Field env names carry the application prefix", func() {
			field := Default[key.VaultPath]
			So(field.Env(), ShouldEqual, "PRISM_VAULT_PATH")
		})
	})
}
