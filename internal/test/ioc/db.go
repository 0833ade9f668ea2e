package testioc

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/ecodeclub/eshop/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var db *egorm.Component

func InitDB() *egorm.Component {
	if db != nil {
		return db
	}
	if err := loadConfig(); err != nil {
		panic(err)
	}
	ioc.WaitForDBSetup(econf.GetStringMapString("mysql")["dsn"])
	db = egorm.Load("mysql").Build()
	return db
}

// loadConfig 默认读仓库根目录的config/config.yaml,
// 跑在别的环境时用 ESHOP_TEST_CONFIG 指到对应配置
func loadConfig() error {
	path := os.Getenv("ESHOP_TEST_CONFIG")
	if path == "" {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		path = filepath.Clean(dir + "../../../../../config/config.yaml")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
}
