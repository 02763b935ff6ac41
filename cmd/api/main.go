package main

import (
	"cop_forum/internal/config"
	"cop_forum/internal/pkg"
	"cop_forum/internal/repository/mysql"
	"cop_forum/internal/repository/redis"
	"cop_forum/internal/router"
	"cop_forum/internal/service"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	pkg.Secret = []byte(cfg.JWTSecret)
	pkg.TokenTTL = cfg.TokenTTL

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		logrus.WithError(err).Fatal("mysql init failed")
	}

	// 自动建表（开发阶段 OK）
	if err := mysql.AutoMigrate(mysql.DB); err != nil {
		logrus.WithError(err).Fatal("auto migrate failed")
	}

	// redis 可选：不配置时登出/吊销不可用，token 纯靠签名和有效期
	if cfg.RedisAddr != "" {
		if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			logrus.WithError(err).Fatal("redis init failed")
		}
		defer redis.Close()
	}

	// kafka 可选：领域事件旁路
	var producer *pkg.KafkaProducer
	if len(cfg.KafkaBrokers) > 0 {
		var err error
		producer, err = pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			logrus.WithError(err).Fatal("kafka init failed")
		}
		defer producer.Close()
	}
	events := service.NewEventPublisher(producer)

	emailSvc := service.NewEmailService(pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})

	r := router.InitRouter(mysql.DB, events, emailSvc)
	if err := r.Run(cfg.Addr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
