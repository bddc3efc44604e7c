package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ytmux-cli/ytmux/key"
)

func TestGet(t *testing.T) {
	Convey("Icon registry", t, func() {
		Convey("Plain variant", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Success), ShouldEqual, "+")
			So(Get(Fail), ShouldEqual, "x")
		})
		Convey("Unknown variant renders nothing", func() {
			viper.Set(key.IconsVariant, "wrong")
			So(Get(Success), ShouldBeEmpty)
		})
		Convey("Every icon has all variants", func() {
			for _, def := range icons {
				So(def.emoji, ShouldNotBeEmpty)
				So(def.nerd, ShouldNotBeEmpty)
				So(def.plain, ShouldNotBeEmpty)
				So(def.kaomoji, ShouldNotBeEmpty)
				So(def.squares, ShouldNotBeEmpty)
			}
		})
	})
}

func TestAvailableVariants(t *testing.T) {
	Convey("AvailableVariants", t, func() {
		So(AvailableVariants(), ShouldContain, "plain")
		So(len(AvailableVariants()), ShouldEqual, 5)
	})
}
