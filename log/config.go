package log

import (
	"github.com/kochabx/restkit/log/writer"
)

// FileConfig 日志文件配置
type FileConfig struct {
	Filepath   string            `mapstructure:"filepath"`
	Filename   string            `mapstructure:"filename"`
	FileExt    string            `mapstructure:"file_ext"`
	Console    bool              `mapstructure:"console"`
	RotateMode writer.RotateMode `mapstructure:"rotate_mode"`
	// 按时间轮转，单位小时
	MaxAgeHours  int `mapstructure:"max_age_hours"`
	RotationTime int `mapstructure:"rotation_time"`
	// 按大小轮转
	MaxSize    int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// applyDefaults 填充未设置的字段
func (c *FileConfig) applyDefaults() {
	setDefault(&c.Filepath, "log")
	setDefault(&c.Filename, "restkit")
	setDefault(&c.FileExt, "log")
	setDefault(&c.MaxAgeHours, 24)
	setDefault(&c.RotationTime, 1)
	setDefault(&c.MaxSize, 100)
	setDefault(&c.MaxBackups, 5)
	setDefault(&c.MaxAgeDays, 30)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// toWriterConfig 转换为 writer.RotateConfig
func (c *FileConfig) toWriterConfig() writer.RotateConfig {
	return writer.RotateConfig{
		Filepath: c.Filepath,
		Filename: c.Filename,
		FileExt:  c.FileExt,
		Mode:     c.RotateMode,
		TimeRotateConfig: writer.TimeRotateConfig{
			MaxAge:       c.MaxAgeHours,
			RotationTime: c.RotationTime,
		},
		SizeRotateConfig: writer.SizeRotateConfig{
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAgeDays,
			Compress:   c.Compress,
		},
	}
}
