package raffle

// RaffleABI is the interface of the raffle contract. Winners are picked by a VRF coordinator, the
// tickets are paid with an ERC20 token.
const RaffleABI = `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[
		{"internalType":"address","name":"vrfCoordinator","type":"address"},
		{"internalType":"bytes32","name":"keyHash","type":"bytes32"},
		{"internalType":"uint64","name":"subscriptionId","type":"uint64"},
		{"internalType":"uint32","name":"callbackGasLimit","type":"uint32"},
		{"internalType":"address","name":"paymentToken","type":"address"}]},
	{"type":"function","name":"createRaffle","stateMutability":"nonpayable","inputs":[
		{"internalType":"string","name":"name","type":"string"},
		{"internalType":"uint256","name":"ticketPrice","type":"uint256"},
		{"internalType":"uint256","name":"maxTickets","type":"uint256"},
		{"internalType":"uint256","name":"duration","type":"uint256"}],
		"outputs":[{"internalType":"uint256","name":"","type":"uint256"}]},
	{"type":"function","name":"buyTicket","stateMutability":"nonpayable","inputs":[
		{"internalType":"uint256","name":"raffleId","type":"uint256"},
		{"internalType":"uint256","name":"quantity","type":"uint256"}],
		"outputs":[]},
	{"type":"function","name":"requestWinner","stateMutability":"nonpayable","inputs":[
		{"internalType":"uint256","name":"raffleId","type":"uint256"}],
		"outputs":[{"internalType":"uint256","name":"requestId","type":"uint256"}]},
	{"type":"function","name":"claimPrize","stateMutability":"nonpayable","inputs":[
		{"internalType":"uint256","name":"raffleId","type":"uint256"}],
		"outputs":[]},
	{"type":"function","name":"withdrawFees","stateMutability":"nonpayable","inputs":[
		{"internalType":"address","name":"to","type":"address"}],
		"outputs":[]},
	{"type":"function","name":"getRaffle","stateMutability":"view","inputs":[
		{"internalType":"uint256","name":"raffleId","type":"uint256"}],
		"outputs":[{"internalType":"struct Raffle.RaffleInfo","name":"","type":"tuple","components":[
			{"internalType":"address","name":"creator","type":"address"},
			{"internalType":"uint256","name":"ticketPrice","type":"uint256"},
			{"internalType":"uint256","name":"maxTickets","type":"uint256"},
			{"internalType":"uint256","name":"ticketsSold","type":"uint256"},
			{"internalType":"uint256","name":"endTime","type":"uint256"},
			{"internalType":"uint8","name":"status","type":"uint8"},
			{"internalType":"address","name":"winner","type":"address"},
			{"internalType":"bool","name":"prizeClaimed","type":"bool"}]}]},
	{"type":"function","name":"raffleCount","stateMutability":"view","inputs":[],
		"outputs":[{"internalType":"uint256","name":"","type":"uint256"}]},
	{"type":"function","name":"paymentToken","stateMutability":"view","inputs":[],
		"outputs":[{"internalType":"address","name":"","type":"address"}]},
	{"type":"event","name":"RaffleCreated","anonymous":false,"inputs":[
		{"indexed":true,"internalType":"uint256","name":"raffleId","type":"uint256"},
		{"indexed":true,"internalType":"address","name":"creator","type":"address"},
		{"indexed":false,"internalType":"uint256","name":"ticketPrice","type":"uint256"},
		{"indexed":false,"internalType":"uint256","name":"maxTickets","type":"uint256"},
		{"indexed":false,"internalType":"uint256","name":"endTime","type":"uint256"}]},
	{"type":"event","name":"TicketPurchased","anonymous":false,"inputs":[
		{"indexed":true,"internalType":"uint256","name":"raffleId","type":"uint256"},
		{"indexed":true,"internalType":"address","name":"buyer","type":"address"},
		{"indexed":false,"internalType":"uint256","name":"quantity","type":"uint256"},
		{"indexed":false,"internalType":"uint256","name":"firstTicketNumber","type":"uint256"}]},
	{"type":"event","name":"WinnerRequested","anonymous":false,"inputs":[
		{"indexed":true,"internalType":"uint256","name":"raffleId","type":"uint256"},
		{"indexed":false,"internalType":"uint256","name":"requestId","type":"uint256"}]},
	{"type":"event","name":"WinnerSelected","anonymous":false,"inputs":[
		{"indexed":true,"internalType":"uint256","name":"raffleId","type":"uint256"},
		{"indexed":true,"internalType":"address","name":"winner","type":"address"},
		{"indexed":false,"internalType":"uint256","name":"randomWord","type":"uint256"}]},
	{"type":"event","name":"PrizeClaimed","anonymous":false,"inputs":[
		{"indexed":true,"internalType":"uint256","name":"raffleId","type":"uint256"},
		{"indexed":true,"internalType":"address","name":"winner","type":"address"}]},
	{"type":"event","name":"FeesWithdrawn","anonymous":false,"inputs":[
		{"indexed":true,"internalType":"address","name":"to","type":"address"},
		{"indexed":false,"internalType":"uint256","name":"amount","type":"uint256"}]}
]`

// TestTokenABI is the ERC20 token used on testnets, anyone can mint it.
const TestTokenABI = `[
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[
		{"internalType":"address","name":"to","type":"address"},
		{"internalType":"uint256","name":"amount","type":"uint256"}],
		"outputs":[]},
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[
		{"internalType":"address","name":"spender","type":"address"},
		{"internalType":"uint256","name":"amount","type":"uint256"}],
		"outputs":[{"internalType":"bool","name":"","type":"bool"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[
		{"internalType":"address","name":"account","type":"address"}],
		"outputs":[{"internalType":"uint256","name":"","type":"uint256"}]},
	{"type":"function","name":"allowance","stateMutability":"view","inputs":[
		{"internalType":"address","name":"owner","type":"address"},
		{"internalType":"address","name":"spender","type":"address"}],
		"outputs":[{"internalType":"uint256","name":"","type":"uint256"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],
		"outputs":[{"internalType":"uint8","name":"","type":"uint8"}]},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[
		{"indexed":true,"internalType":"address","name":"from","type":"address"},
		{"indexed":true,"internalType":"address","name":"to","type":"address"},
		{"indexed":false,"internalType":"uint256","name":"value","type":"uint256"}]},
	{"type":"event","name":"Approval","anonymous":false,"inputs":[
		{"indexed":true,"internalType":"address","name":"owner","type":"address"},
		{"indexed":true,"internalType":"address","name":"spender","type":"address"},
		{"indexed":false,"internalType":"uint256","name":"value","type":"uint256"}]}
]`
