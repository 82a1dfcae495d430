package utils

import (
	"strings"

	"VidTube.com/config"
)

func GetMysqlDsn() string {
	//生成数据库的dsn
	c := config.ConfigInfo.Mysql
	charset := c.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	dsn := strings.Join([]string{c.Username, ":", c.Password, "@tcp(", c.Addr, ")/",
		c.Database, "?charset=" + charset + "&parseTime=True&loc=Local"}, "") //nolint:lll

	return dsn
}
