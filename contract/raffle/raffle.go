package raffle

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Status values of RaffleInfo.Status.
const (
	StatusActive uint8 = iota
	StatusDrawing
	StatusCompleted
	StatusCancelled
	StatusRefunding
)

// RaffleInfo is the result of getRaffle. The field order must follow the abi tuple.
type RaffleInfo struct {
	Creator      common.Address
	TicketPrice  *big.Int
	MaxTickets   *big.Int
	TicketsSold  *big.Int
	EndTime      *big.Int
	Status       uint8
	Winner       common.Address
	PrizeClaimed bool
}

type RaffleTicketPurchased struct {
	RaffleId          *big.Int
	Buyer             common.Address
	Quantity          *big.Int
	FirstTicketNumber *big.Int
	Raw               types.Log
}

type RaffleWinnerSelected struct {
	RaffleId   *big.Int
	Winner     common.Address
	RandomWord *big.Int
	Raw        types.Log
}

func ParseRaffleABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(RaffleABI))
}

// Raffle is a binding of a deployed raffle contract.
type Raffle struct {
	address  common.Address
	contract *bind.BoundContract
}

func NewRaffle(address common.Address, backend bind.ContractBackend) (*Raffle, error) {
	parsed, err := ParseRaffleABI()
	if err != nil {
		return nil, err
	}

	contract := bind.NewBoundContract(address, parsed, backend, backend, backend)
	return &Raffle{address: address, contract: contract}, nil
}

// DeployRaffle deploys the compiled raffle bytecode with the constructor arguments.
func DeployRaffle(
	opts *bind.TransactOpts,
	backend bind.ContractBackend,
	bytecode []byte,
	vrfCoordinator common.Address,
	keyHash [32]byte,
	subscriptionID uint64,
	callbackGasLimit uint32,
	paymentToken common.Address,
) (common.Address, *types.Transaction, *Raffle, error) {
	parsed, err := ParseRaffleABI()
	if err != nil {
		return common.Address{}, nil, nil, err
	}

	address, tx, contract, err := bind.DeployContract(opts, parsed, bytecode, backend,
		vrfCoordinator, keyHash, subscriptionID, callbackGasLimit, paymentToken)
	if err != nil {
		return common.Address{}, nil, nil, err
	}

	return address, tx, &Raffle{address: address, contract: contract}, nil
}

func (r *Raffle) Address() common.Address {
	return r.address
}

func (r *Raffle) GetRaffle(opts *bind.CallOpts, raffleID *big.Int) (RaffleInfo, error) {
	var out []interface{}
	if err := r.contract.Call(opts, &out, "getRaffle", raffleID); err != nil {
		return RaffleInfo{}, err
	}

	return *abi.ConvertType(out[0], new(RaffleInfo)).(*RaffleInfo), nil
}

func (r *Raffle) RaffleCount(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	if err := r.contract.Call(opts, &out, "raffleCount"); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (r *Raffle) PaymentToken(opts *bind.CallOpts) (common.Address, error) {
	var out []interface{}
	if err := r.contract.Call(opts, &out, "paymentToken"); err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (r *Raffle) CreateRaffle(
	opts *bind.TransactOpts, name string, ticketPrice, maxTickets, duration *big.Int,
) (*types.Transaction, error) {
	return r.contract.Transact(opts, "createRaffle", name, ticketPrice, maxTickets, duration)
}

func (r *Raffle) BuyTicket(opts *bind.TransactOpts, raffleID, quantity *big.Int) (*types.Transaction, error) {
	return r.contract.Transact(opts, "buyTicket", raffleID, quantity)
}

func (r *Raffle) RequestWinner(opts *bind.TransactOpts, raffleID *big.Int) (*types.Transaction, error) {
	return r.contract.Transact(opts, "requestWinner", raffleID)
}

func (r *Raffle) ClaimPrize(opts *bind.TransactOpts, raffleID *big.Int) (*types.Transaction, error) {
	return r.contract.Transact(opts, "claimPrize", raffleID)
}

func (r *Raffle) WithdrawFees(opts *bind.TransactOpts, to common.Address) (*types.Transaction, error) {
	return r.contract.Transact(opts, "withdrawFees", to)
}

func (r *Raffle) ParseTicketPurchased(log types.Log) (*RaffleTicketPurchased, error) {
	event := new(RaffleTicketPurchased)
	if err := r.contract.UnpackLog(event, "TicketPurchased", log); err != nil {
		return nil, err
	}

	event.Raw = log
	return event, nil
}

func (r *Raffle) ParseWinnerSelected(log types.Log) (*RaffleWinnerSelected, error) {
	event := new(RaffleWinnerSelected)
	if err := r.contract.UnpackLog(event, "WinnerSelected", log); err != nil {
		return nil, err
	}

	event.Raw = log
	return event, nil
}
