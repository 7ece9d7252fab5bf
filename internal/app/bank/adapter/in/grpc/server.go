package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/usecase"
	pb "github.com/JoeShih716/go-mem-bank/proto"
)

type GrpcServer struct {
	pb.UnimplementedBankServiceServer
	bank *usecase.BankUseCase
}

func NewGrpcServer(bank *usecase.BankUseCase) *GrpcServer {
	return &GrpcServer{
		bank: bank,
	}
}

func (s *GrpcServer) AddAccountType(ctx context.Context, req *pb.AddAccountTypeRequest) (*pb.AddAccountTypeResponse, error) {
	rate, err := decimal.NewFromString(req.InterestRate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid interest_rate: "+err.Error())
	}

	if err := s.bank.AddAccountType(ctx, req.Name, rate); err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountTypeExists):
			return nil, status.Error(codes.AlreadyExists, err.Error())
		case errors.Is(err, domain.ErrRateMustBePositive), errors.Is(err, domain.ErrTypeNameRequired):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.AddAccountTypeResponse{}, nil
}

func (s *GrpcServer) OpenAccount(ctx context.Context, req *pb.OpenAccountRequest) (*pb.OpenAccountResponse, error) {
	accountID, err := s.bank.OpenAccount(ctx, req.AccountType)
	if err != nil {
		if errors.Is(err, domain.ErrAccountTypeNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.OpenAccountResponse{
		AccountId: accountID,
	}, nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	balance, err := s.bank.GetBalance(ctx, req.AccountId)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.GetBalanceResponse{
		Balance: balance.StringFixed(domain.BalanceScale),
	}, nil
}

func (s *GrpcServer) GetInterestRate(ctx context.Context, req *pb.GetInterestRateRequest) (*pb.GetInterestRateResponse, error) {
	rate, err := s.bank.GetInterestRate(ctx, req.AccountId)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.GetInterestRateResponse{
		InterestRate: rate.String(),
	}, nil
}

func (s *GrpcServer) Transfer(ctx context.Context, req *pb.TransferRequest) (*pb.TransferResponse, error) {
	// 1. UUID 解析
	if _, err := uuid.Parse(req.RefId); err != nil {
		return &pb.TransferResponse{
			Success: false,
			Message: "invalid ref_id: " + err.Error(),
		}, nil
	}

	// 2. 金額解析
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return &pb.TransferResponse{
			Success: false,
			Message: "invalid amount: " + err.Error(),
		}, nil
	}

	// 3. 依交易類型執行
	switch req.Type {
	case pb.TransactionType_DEPOSIT:
		err = s.bank.Deposit(ctx, req.ToAccountId, amount)
	case pb.TransactionType_WITHDRAW:
		err = s.bank.Withdraw(ctx, req.FromAccountId, amount)
	case pb.TransactionType_TRANSFER:
		err = s.bank.Transfer(ctx, req.FromAccountId, req.ToAccountId, amount)
	default:
		return &pb.TransferResponse{
			Success: false,
			Message: "invalid transaction type",
		}, nil
	}
	if err != nil {
		// 業務邏輯錯誤，回傳 Success=false (Soft Failure)
		return &pb.TransferResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	// 4. [Optional] 取得最新餘額 (Best Effort)
	// 轉帳/提款回傳 From 的餘額，存款回傳 To 的餘額
	targetAccountID := req.FromAccountId
	if req.Type == pb.TransactionType_DEPOSIT {
		targetAccountID = req.ToAccountId
	}

	balance, _ := s.bank.GetBalance(ctx, targetAccountID)

	return &pb.TransferResponse{
		Success:        true,
		CurrentBalance: balance.StringFixed(domain.BalanceScale),
	}, nil
}

func (s *GrpcServer) AccrueInterest(ctx context.Context, req *pb.AccrueInterestRequest) (*pb.AccrueInterestResponse, error) {
	accounts, err := s.bank.AccrueInterest(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.AccrueInterestResponse{
		Accounts: int64(accounts),
	}, nil
}
