package usecasees

import (
	"fmt"
	"runtime/debug"
	"time"

	"recifi/internal/controllers"
	"recifi/internal/repository/postgres"
	"recifi/models"

	"github.com/sirupsen/logrus"
)

type tgmUseCase struct {
	tradeRepo     postgres.TradeRepo
	tgmController controllers.TgmCtrl
	logger        *logrus.Logger
}

func NewTgmUseCase(
	tradeRepo postgres.TradeRepo,
	tgmController controllers.TgmCtrl,
	logger *logrus.Logger,
) *tgmUseCase {
	return &tgmUseCase{
		tradeRepo:     tradeRepo,
		tgmController: tgmController,
		logger:        logger,
	}
}

func (u *tgmUseCase) CommandProcessor() {
	for update := range u.tgmController.GetUpdates() {
		if update.Message == nil {
			continue
		}

		if u.tgmController.CheckChatID(update.Message.Chat.ID) {
			switch update.Message.Command() {
			case "ping":
				u.pingProc()
			case "stat":
				u.tradeStatProc()
			}
		}
	}
}

func (u *tgmUseCase) tradeStatProc() {
	stat, err := u.tradeRepo.Stat()
	if err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))

		return
	}

	var total int
	for _, count := range stat {
		total += count
	}

	msg := fmt.Sprintf(
		"[ Trades Stat ]\n"+
			"Total:\t%d\n"+
			"Open:\t%d\n"+
			"In process:\t%d\n"+
			"Closed:\t%d\n"+
			"Failed:\t%d\n"+
			"Cancelled:\t%d\n",
		total,
		stat[models.TradeStatusOpen],
		stat[models.TradeStatusInProcess],
		stat[models.TradeStatusClosed],
		stat[models.TradeStatusFailed],
		stat[models.TradeStatusCancelled],
	)

	if err := u.tgmController.Send(msg); err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
	}
}

func (u *tgmUseCase) pingProc() {
	if err := u.tgmController.Send(
		fmt.Sprintf(
			"PONG [ %s ]",
			time.Now().UTC().Format(time.RFC822),
		)); err != nil {
		u.logger.WithField("method", "pingProc").Debug(err)
	}
}
